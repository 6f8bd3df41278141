/*
 * Copyright © 2020, G.Ralph Kuntz, MD.
 *
 * Licensed under the Apache License, Version 2.0(the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIC
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Command qrcodegen parses /E, /V, /K, /O options, reads a payload from
// standard input, and writes the version number followed by the flattened
// module grid to standard output. None of the encoder's algorithmic
// content lives here; it is a thin driver over the qrcodegen package.
package main

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pkg/browser"

	"github.com/cortezdev/qrcodegen"
)

const usage = `Usage: qrcodegen [/E ErrorCorrectionLevel] [/V Version] [/K] [/O] [-browser]

Options:
  /E ErrorCorrectionLevel   Error correction level. L, M, Q, or H.
  /V Version                Size of the symbol represented by version 1 to 40.
  /K                        Use Kanji mode.
  /O                        Optimize the length of the bit string.
  -browser                  Open the rendered grid in a browser tab.
`

func printUsageAndExit() {
	fmt.Fprint(os.Stderr, usage)
	os.Exit(1)
}

func parseErrorCorrectionLevel(v string) (qrcodegen.ErrorCorrectionLevel, bool) {
	if len(v) != 1 {
		return 0, false
	}
	switch v[0] {
	case 'L', 'l':
		return qrcodegen.Low, true
	case 'M', 'm':
		return qrcodegen.Medium, true
	case 'Q', 'q':
		return qrcodegen.Quartile, true
	case 'H', 'h':
		return qrcodegen.High, true
	default:
		return 0, false
	}
}

func parseVersion(v string) (int, bool) {
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 || n > 40 {
		return 0, false
	}
	return n, true
}

type parsedArgs struct {
	ecl          qrcodegen.ErrorCorrectionLevel
	version      int // 0 means "not specified".
	useKanjiMode bool
	optimize     bool
	browser      bool
}

func parseArgs(args []string) parsedArgs {
	result := parsedArgs{ecl: qrcodegen.Low}

	option := byte(0)
	for _, v := range args {
		if option != 0 {
			switch option {
			case 'E', 'e':
				ecl, ok := parseErrorCorrectionLevel(v)
				if !ok {
					printUsageAndExit()
				}
				result.ecl = ecl
			case 'V', 'v':
				version, ok := parseVersion(v)
				if !ok {
					printUsageAndExit()
				}
				result.version = version
			default:
				printUsageAndExit()
			}
			option = 0
			continue
		}

		if v == "-browser" {
			result.browser = true
			continue
		}

		if len(v) < 2 || v[0] != '/' {
			printUsageAndExit()
		}

		switch v[1] {
		case 'K', 'k':
			if len(v) != 2 {
				printUsageAndExit()
			}
			result.useKanjiMode = true
		case 'O', 'o':
			if len(v) != 2 {
				printUsageAndExit()
			}
			result.optimize = true
		default:
			if len(v) != 2 {
				printUsageAndExit()
			}
			option = v[1]
		}
	}

	if option != 0 {
		printUsageAndExit()
	}

	return result
}

func run() error {
	args := parseArgs(os.Args[1:])

	data, err := io.ReadAll(io.LimitReader(os.Stdin, qrcodegen.MaxDataLength+1))
	if err != nil {
		return fmt.Errorf("read error: %w", err)
	}
	if len(data) > qrcodegen.MaxDataLength {
		return fmt.Errorf("input is too long")
	}

	opts := []qrcodegen.Option{
		qrcodegen.WithKanjiMode(args.useKanjiMode),
		qrcodegen.WithOptimize(args.optimize),
	}
	if args.version != 0 {
		opts = append(opts, qrcodegen.WithVersion(args.version))
	}

	qr, err := qrcodegen.Encode(data, args.ecl, opts...)
	if err != nil {
		return err
	}

	fmt.Printf("%d %s\n", qr.Version, qr.FlattenedBits())

	if args.browser {
		if err := previewInBrowser(qr); err != nil {
			fmt.Fprintf(os.Stderr, "preview: %v\n", err)
		}
	}

	return nil
}

// previewInBrowser writes the flattened grid to a temporary text file and
// opens it, for developers who want a quick look without a decoder app.
func previewInBrowser(qr *qrcodegen.QRCode) error {
	f, err := os.CreateTemp("", "qrcodegen-*.txt")
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := fmt.Fprintf(f, "%d %s\n", qr.Version, qr.FlattenedBits()); err != nil {
		return err
	}

	return browser.OpenFile(f.Name())
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
