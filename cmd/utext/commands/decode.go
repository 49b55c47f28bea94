package commands

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/utext/internal/core/domain"
	"go.trai.ch/zerr"
)

func (c *CLI) newDecodeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "decode",
		Short: "Decode a byte buffer into text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			flags := cmd.Flags()
			encName, _ := flags.GetString("encoding")
			rawHex, _ := flags.GetString("hex")
			offset, _ := flags.GetInt("offset")
			length, _ := flags.GetInt("length")
			terminated, _ := flags.GetBool("terminated")
			to, _ := flags.GetString("to")

			enc, err := domain.ParseEncoding(encName)
			if err != nil {
				return err
			}
			data, err := hex.DecodeString(strings.ReplaceAll(rawHex, " ", ""))
			if err != nil {
				return zerr.Wrap(err, "invalid hex input")
			}

			switch {
			case terminated:
				length = domain.ScanToTerminator
			case !flags.Changed("length"):
				length = max(len(data)/enc.UnitSize()-offset, 0)
			}

			text, err := domain.FromSource(domain.ByteSource{
				Data:     data,
				Offset:   offset,
				Length:   length,
				Encoding: enc,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if to == "" {
				_, _ = fmt.Fprintln(out, text.String())
				return nil
			}

			target, err := domain.ParseEncoding(to)
			if err != nil {
				return err
			}
			encoded, err := domain.Encode(text, target)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintln(out, hex.EncodeToString(encoded))
			return nil
		},
	}
	cmd.Flags().StringP("encoding", "e", "utf8", "Encoding of the input bytes (ascii, utf8, utf16le, utf16be)")
	cmd.Flags().String("hex", "", "Input bytes as a hex string")
	cmd.Flags().Int("offset", 0, "Start offset in encoding units")
	cmd.Flags().Int("length", 0, "Number of encoding units to decode (defaults to the rest of the buffer)")
	cmd.Flags().BoolP("terminated", "t", false, "Decode up to the first zero unit")
	cmd.Flags().String("to", "", "Re-encode the text and print it as hex")
	cmd.MarkFlagsMutuallyExclusive("length", "terminated")
	return cmd
}
