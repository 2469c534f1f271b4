/*
Copyright © 2024 playfetch authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(listCmd)

	listCmd.Flags().StringP("subcategory", "c", "", "subcategory (i.e. apps_topselling_free)")
	listCmd.Flags().IntP("num", "n", 0, "how many results to request")
}

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:           "list <CATEGORY>",
	Short:         "List apps by category",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient(cmd)
		if err != nil {
			return err
		}

		subcategory, _ := cmd.Flags().GetString("subcategory")
		num, _ := cmd.Flags().GetInt("num")

		list, err := client.ListByCategory(cmd.Context(), args[0], subcategory, num)
		if err != nil {
			return err
		}
		if list == nil {
			return fmt.Errorf("no apps found in category '%s'", args[0])
		}

		for _, doc := range list.GetDoc() {
			if len(doc.GetChild()) == 0 {
				// without a subcategory the response enumerates the valid ones
				fmt.Println(doc.GetDocid())
				continue
			}
			for _, child := range doc.GetChild() {
				fmt.Printf("%s\t%s\n", child.GetDocid(), child.GetTitle())
			}
		}

		return nil
	},
}
