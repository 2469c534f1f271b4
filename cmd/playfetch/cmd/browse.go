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
	rootCmd.AddCommand(browseCmd)
}

// browseCmd represents the browse command
var browseCmd = &cobra.Command{
	Use:           "browse [CATEGORY]",
	Short:         "List the store's app categories (or the subcategories of one)",
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient(cmd)
		if err != nil {
			return err
		}

		category := ""
		if len(args) > 0 {
			category = args[0]
		}

		browse, err := client.BrowseCategories(cmd.Context(), category)
		if err != nil {
			return err
		}
		if browse == nil {
			return fmt.Errorf("no categories found")
		}

		for _, cat := range browse.GetCategory() {
			fmt.Println(cat.GetName())
		}

		return nil
	},
}
