package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wichananm65/plant-shop-storefront/internal/config"
	"github.com/wichananm65/plant-shop-storefront/internal/share"
)

var (
	shareURL  string
	shareCopy bool
	shareQR   string
)

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Print share links for the storefront, optionally copying the link",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Load()
		pageURL := share.URLFor(shareURL, cfg.PublicURL)
		if pageURL == "" {
			fmt.Fprintln(os.Stderr, "no URL: set PUBLIC_URL or pass --url")
			os.Exit(1)
		}

		links := share.BuildLinks(pageURL)
		fmt.Println(links.Native.Title)
		fmt.Println("link:     ", links.URL)
		fmt.Println("whatsapp: ", links.WhatsApp)
		fmt.Println("sms:      ", links.SMS)

		if shareCopy {
			res := share.Copy(links.URL, share.SystemClipboard{}, share.TerminalClipboard{W: os.Stdout})
			fmt.Println(res.Message)
			if !res.Copied {
				fmt.Println(res.Manual)
			}
		}

		if shareQR != "" {
			png, err := share.LocalEncoder{}.PNG(pageURL, share.QRSize)
			if err != nil {
				fmt.Fprintf(os.Stderr, "qr: %v\nuse %s\n", err, share.RemoteQRURL(pageURL))
				os.Exit(1)
			}
			if err := os.WriteFile(shareQR, png, 0o644); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
			fmt.Println("qr:       ", shareQR)
		}
	},
}

func init() {
	shareCmd.Flags().StringVarP(&shareURL, "url", "u", "", "page URL to share (defaults to PUBLIC_URL)")
	shareCmd.Flags().BoolVarP(&shareCopy, "copy", "c", false, "copy the link to the clipboard")
	shareCmd.Flags().StringVar(&shareQR, "qr", "", "write the QR code PNG to this file")
	rootCmd.AddCommand(shareCmd)
}
