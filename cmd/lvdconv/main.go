// The lvdconv command converts LVD level geometry files to and from YAML.
//
// A .yaml or .yml input is converted to binary LVD; any other input is
// treated as binary LVD and converted to YAML. The output path defaults to
// the input path with the complementary extension. The --endian flag
// selects the byte order of the binary side and is ignored when both sides
// are textual.
package main

import (
	"bytes"
	"context"
	"encoding/binary"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/ultimate-research/lvdfile/lvd"
	"github.com/ultimate-research/lvdfile/yml"
)

func run(ctx context.Context, cmd *cli.Command) error {
	input := cmd.Args().Get(0)
	if input == "" {
		return fmt.Errorf("missing input path")
	}
	output := cmd.Args().Get(1)

	order, err := byteOrder(cmd.String("endian"))
	if err != nil {
		return err
	}

	if isYAML(input) {
		return convertToBinary(input, output, order)
	}
	return convertToYAML(input, output, order)
}

func main() {
	cmd := &cli.Command{
		Name:      "lvdconv",
		Usage:     "Convert LVD level geometry files to and from YAML",
		ArgsUsage: "<input> [output]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "endian",
				Aliases: []string{"e"},
				Value:   "big",
				Usage:   "byte order of the binary file (big or little)",
			},
		},
		Action: run,
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		slog.Error("conversion failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func byteOrder(name string) (binary.ByteOrder, error) {
	switch name {
	case "big":
		return binary.BigEndian, nil
	case "little":
		return binary.LittleEndian, nil
	}
	return nil, fmt.Errorf("invalid byte order %q: must be big or little", name)
}

func isYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

// swapExt replaces the input path's extension, so that stage.lvd becomes
// stage.yaml and back.
func swapExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}

func convertToYAML(input, output string, order binary.ByteOrder) error {
	data, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	doc, warn, err := lvd.Decoder{Order: order}.Decode(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("decoding %s: %w", input, err)
	}
	if warn != nil {
		slog.Warn("decode warning", slog.String("path", input), slog.String("warning", warn.Error()))
	}

	text, err := yml.Marshal(doc)
	if err != nil {
		return err
	}

	if output == "" {
		output = swapExt(input, ".yaml")
	}
	return os.WriteFile(output, text, 0666)
}

func convertToBinary(input, output string, order binary.ByteOrder) error {
	text, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	doc, err := yml.Unmarshal(text)
	if err != nil {
		return fmt.Errorf("reading %s: %w", input, err)
	}

	var buf bytes.Buffer
	if err := (lvd.Encoder{Order: order}).Encode(&buf, doc); err != nil {
		return fmt.Errorf("encoding %s: %w", input, err)
	}

	if output == "" {
		output = swapExt(input, ".lvd")
	}
	return os.WriteFile(output, buf.Bytes(), 0666)
}
