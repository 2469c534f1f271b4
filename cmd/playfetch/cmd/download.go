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
	"os"
	"strings"
	"sync"
	"time"

	"github.com/apex/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/vbauerster/mpb/v8"
	"github.com/vbauerster/mpb/v8/decor"

	"github.com/playfetch/playfetch/internal/utils"
	"github.com/playfetch/playfetch/pkg/playstore"
)

func init() {
	rootCmd.AddCommand(downloadCmd)

	downloadCmd.Flags().StringP("output", "o", "", "folder to download files to")
	downloadCmd.Flags().StringP("tag", "t", "", "tag prefixed to the downloaded file names")
	downloadCmd.Flags().BoolP("blobs", "b", false, "also download the expansion (.obb) files")
	downloadCmd.Flags().BoolP("split-apks", "s", false, "also download the split apks")
	downloadCmd.Flags().IntP("parallel", "p", 1, "number of packages to download at once")
	viper.BindPFlag("download.out_dir", downloadCmd.Flags().Lookup("output"))
}

// downloadCmd represents the download command
var downloadCmd = &cobra.Command{
	Use:           "download <PACKAGE>...",
	Short:         "Download one or more apps from the Play Store",
	Example:       "  playfetch download com.spotify.music\n  playfetch download -b -s -o ./Downloads com.example.app1 com.example.app2",
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		client, conf, err := newClient(cmd)
		if err != nil {
			return err
		}

		tag, _ := cmd.Flags().GetString("tag")
		blobs, _ := cmd.Flags().GetBool("blobs")
		splitApks, _ := cmd.Flags().GetBool("split-apks")
		parallel, _ := cmd.Flags().GetInt("parallel")
		if parallel < 1 {
			parallel = 1
		}

		outDir := viper.GetString("download.out_dir")
		if outDir == "" {
			outDir = conf.Download.OutDir
		}
		if outDir == "" {
			outDir = "."
		}
		if err := os.MkdirAll(outDir, 0750); err != nil {
			return fmt.Errorf("failed to create output folder %s: %v", outDir, err)
		}

		p := mpb.New(
			mpb.WithWidth(60),
			mpb.WithRefreshRate(180*time.Millisecond),
		)

		var mu sync.Mutex
		var failed []string

		sem := make(chan struct{}, parallel)
		var wg sync.WaitGroup

		var pkgs []string
		for _, arg := range args {
			if pkg := strings.Trim(arg, ` '"`); !utils.StrSliceHas(pkgs, pkg) {
				pkgs = append(pkgs, pkg)
			}
		}

		for _, pkg := range pkgs {
			pkg := pkg
			wg.Add(1)
			go func() {
				defer wg.Done()
				sem <- struct{}{}
				defer func() { <-sem }()

				bar := p.New(100,
					mpb.BarStyle(),
					mpb.PrependDecorators(decor.Name(pkg)),
					mpb.AppendDecorators(decor.Percentage()),
				)

				err := client.Download(cmd.Context(), pkg, &playstore.DownloadOptions{
					OutDir:         outDir,
					Tag:            tag,
					ExpansionFiles: blobs,
					SplitPackages:  splitApks,
					Progress: func(pct int) {
						bar.SetCurrent(int64(pct))
					},
				})
				bar.SetTotal(100, true)

				if err != nil {
					log.WithError(err).Errorf("there was an error downloading package %s", pkg)
					mu.Lock()
					failed = append(failed, pkg)
					mu.Unlock()
				}
			}()
		}

		wg.Wait()
		p.Wait()

		// per-package failures must not abort sibling packages
		if len(failed) > 0 {
			return fmt.Errorf("failed to download: %s", strings.Join(failed, ", "))
		}

		return nil
	},
}
