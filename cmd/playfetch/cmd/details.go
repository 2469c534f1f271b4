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

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(detailsCmd)
}

// detailsCmd represents the details command
var detailsCmd = &cobra.Command{
	Use:           "details <PACKAGE>",
	Short:         "Show the store details of an app",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, _, err := newClient(cmd)
		if err != nil {
			return err
		}

		details, err := client.AppDetails(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		if details.GetDocV2() == nil {
			return fmt.Errorf("no details found for package '%s'", args[0])
		}

		doc := details.GetDocV2()
		app := doc.GetDetails().GetAppDetails()

		fmt.Printf("%s\n", doc.GetTitle())
		fmt.Printf("  package:  %s\n", doc.GetDocid())
		fmt.Printf("  creator:  %s\n", doc.GetCreator())
		fmt.Printf("  version:  %s (%d)\n", app.GetVersionString(), app.GetVersionCode())
		fmt.Printf("  size:     %s\n", humanize.Bytes(uint64(app.GetInstallationSize())))
		fmt.Printf("  installs: %s\n", app.GetNumDownloads())
		if len(doc.GetOffer()) > 0 {
			fmt.Printf("  price:    %s\n", doc.GetOffer()[0].GetFormattedAmount())
		}

		return nil
	},
}
