// Package main is the entry point for the mcoded7 CLI
package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ZILtoid1991/midi2/pkg/api"
	"github.com/ZILtoid1991/midi2/pkg/mcoded7"
	"github.com/ZILtoid1991/midi2/pkg/sysex"
	"github.com/ZILtoid1991/midi2/pkg/tui"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	outputFile string
	serverPort int
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "mcoded7",
	Short: "Convert binary data to and from the Mcoded7 7-bit-clean encoding",
	Long: `mcoded7 is a tool for packing arbitrary binary data into the 7-bit-clean
Mcoded7 representation used by MIDI Capability Inquiry SysEx payloads,
and for unpacking it again.

Every 7 raw bytes become 8 encoded bytes whose high bits are all zero.
The encoding carries no length: a stream that is not a multiple of 7
bytes long is zero-padded, so keep the original length out of band if
exact recovery matters.

Examples:
  mcoded7 encode firmware.bin -o firmware.mc7
  mcoded7 decode firmware.mc7 -o firmware.bin
  mcoded7 wrap firmware.bin -o firmware.syx
  mcoded7 unwrap dump.syx -o dump.bin
  mcoded7 mid firmware.bin -o firmware.mid
  mcoded7 tui
  mcoded7 serve --port 8080`,
	Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
}

var encodeCmd = &cobra.Command{
	Use:   "encode <input>",
	Short: "Encode a binary file to Mcoded7",
	Args:  cobra.ExactArgs(1),
	RunE:  runEncode,
}

var decodeCmd = &cobra.Command{
	Use:   "decode <input.mc7>",
	Short: "Decode an Mcoded7 file back to binary",
	Args:  cobra.ExactArgs(1),
	RunE:  runDecode,
}

var wrapCmd = &cobra.Command{
	Use:   "wrap <input>",
	Short: "Encode a binary file and wrap it in a SysEx frame",
	Args:  cobra.ExactArgs(1),
	RunE:  runWrap,
}

var unwrapCmd = &cobra.Command{
	Use:   "unwrap <input.syx>",
	Short: "Unwrap a SysEx frame and decode its Mcoded7 payload",
	Args:  cobra.ExactArgs(1),
	RunE:  runUnwrap,
}

var midCmd = &cobra.Command{
	Use:   "mid <input>",
	Short: "Encode a binary file and embed it as SysEx in a MIDI file",
	Args:  cobra.ExactArgs(1),
	RunE:  runMid,
}

var extractCmd = &cobra.Command{
	Use:   "extract <input.mid>",
	Short: "Extract and decode the first SysEx payload from a MIDI file",
	Args:  cobra.ExactArgs(1),
	RunE:  runExtract,
}

var infoCmd = &cobra.Command{
	Use:   "info <input>",
	Short: "Show the block math for a file without converting it",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch interactive terminal UI",
	RunE:  runTUI,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server",
	RunE:  runServe,
}

func init() {
	encodeCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output .mc7 file path")
	decodeCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file path")
	wrapCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output .syx file path")
	unwrapCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file path")
	midCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output .mid file path")
	extractCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file path")

	serveCmd.Flags().IntVarP(&serverPort, "port", "p", 8080, "Server port")

	rootCmd.AddCommand(encodeCmd)
	rootCmd.AddCommand(decodeCmd)
	rootCmd.AddCommand(wrapCmd)
	rootCmd.AddCommand(unwrapCmd)
	rootCmd.AddCommand(midCmd)
	rootCmd.AddCommand(extractCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(tuiCmd)
	rootCmd.AddCommand(serveCmd)
}

func getOutputPath(input, defaultExt string) string {
	if outputFile != "" {
		return outputFile
	}
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + defaultExt
}

func convertFile(input, defaultExt string, convert func([]byte) ([]byte, error)) error {
	output := getOutputPath(input, defaultExt)

	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	result, err := convert(data)
	if err != nil {
		return err
	}

	if err := os.WriteFile(output, result, 0644); err != nil {
		return err
	}

	fmt.Printf("Converted %s (%d bytes) -> %s (%d bytes)\n", input, len(data), output, len(result))
	return nil
}

func runEncode(cmd *cobra.Command, args []string) error {
	return convertFile(args[0], ".mc7", sysex.EncodeMessage)
}

func runDecode(cmd *cobra.Command, args []string) error {
	return convertFile(args[0], ".bin", sysex.DecodeMessage)
}

func runWrap(cmd *cobra.Command, args []string) error {
	return convertFile(args[0], ".syx", sysex.EncodeFrame)
}

func runUnwrap(cmd *cobra.Command, args []string) error {
	return convertFile(args[0], ".bin", sysex.DecodeFrame)
}

func runMid(cmd *cobra.Command, args []string) error {
	return convertFile(args[0], ".mid", func(data []byte) ([]byte, error) {
		payload, err := sysex.EncodeMessage(data)
		if err != nil {
			return nil, err
		}
		var buf bytes.Buffer
		if err := sysex.WriteSMF(&buf, payload); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})
}

func runExtract(cmd *cobra.Command, args []string) error {
	return convertFile(args[0], ".bin", func(data []byte) ([]byte, error) {
		payload, err := sysex.ReadSMF(data)
		if err != nil {
			return nil, err
		}
		return sysex.DecodeMessage(payload)
	})
}

func runInfo(cmd *cobra.Command, args []string) error {
	input := args[0]

	fi, err := os.Stat(input)
	if err != nil {
		return err
	}

	size := int(fi.Size())
	fmt.Printf("File:            %s\n", input)
	fmt.Printf("Size:            %d bytes\n", size)
	fmt.Printf("Full blocks:     %d\n", size/mcoded7.RawBlockSize)
	if rem := size % mcoded7.RawBlockSize; rem != 0 {
		fmt.Printf("Trailing bytes:  %d (zero-padded with %d on finalize)\n", rem, mcoded7.RawBlockSize-rem)
	} else {
		fmt.Printf("Trailing bytes:  0 (block-aligned, no padding)\n")
	}
	fmt.Printf("Encoded size:    %d bytes\n", mcoded7.EncodedLen(size))
	fmt.Printf("Framed size:     %d bytes (with F0/F7 envelope)\n", mcoded7.EncodedLen(size)+2)
	return nil
}

func runTUI(cmd *cobra.Command, args []string) error {
	return tui.Run()
}

func runServe(cmd *cobra.Command, args []string) error {
	fmt.Printf("Starting API server on port %d...\n", serverPort)
	return api.StartServer(serverPort)
}
