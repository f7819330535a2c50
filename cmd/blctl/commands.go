package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/openblusb/blctl/internal/config"
	"github.com/openblusb/blctl/internal/device"
	"github.com/openblusb/blctl/internal/keycodes"
	"github.com/openblusb/blctl/internal/layout"
	"github.com/openblusb/blctl/internal/logging"
	"github.com/openblusb/blctl/internal/ui"
)

// Command flags
var (
	serialPort  string
	outputPath  string
	useNames    bool
	skipConfirm bool
)

func init() {
	// Logging is silent unless BLCTL_LOG_LEVEL is set
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		_ = logging.InitializeFromEnv()
	}

	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(printCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(writeCmd)
	rootCmd.AddCommand(readCmd)
}

// resolvePort returns the serial port to use: the --port flag if given,
// otherwise the registry's default from the last successful flash
func resolvePort() (string, error) {
	if serialPort != "" {
		return serialPort, nil
	}
	reg, err := config.LoadRegistry()
	if err != nil {
		return "", err
	}
	if reg.Preferences != nil && reg.Preferences.DefaultPort != "" {
		return reg.Preferences.DefaultPort, nil
	}
	return "", fmt.Errorf("no serial port specified (use --port, e.g. --port /dev/ttyACM0)")
}

// nameLookup returns the key-code naming function for grid output: enabled
// by the --names flag, or by the registry's named_output preference
func nameLookup() func(uint16) string {
	if useNames {
		return keycodes.Name
	}
	if reg, err := config.LoadRegistry(); err == nil && reg.Preferences != nil && reg.Preferences.NamedOutput {
		return keycodes.Name
	}
	return nil
}

// validateCmd parses a layout file and reports diagnostics
var validateCmd = &cobra.Command{
	Use:   "validate <layout-file>",
	Short: "Validate a layout file",
	Long: `Parse a layout file and report whether it is well formed.

Checks that every layer has exactly 8 rows of 20 comma-separated key codes,
that every key code fits in 16 bits, and that the file contains at most 6
layers. On failure the diagnostic names the error kind, the 1-based layer
and key index, and the byte offset of the offending character.`,
	Example: `  blctl validate modelm.txt`,
	Args:    cobra.ExactArgs(1),
	RunE:    runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	m, err := layout.ParseFile(args[0])
	if err != nil {
		return err
	}

	fmt.Printf("%s: OK (%s)\n", args[0], m.Summary())
	return nil
}

// printCmd renders a layout file as per-layer grids
var printCmd = &cobra.Command{
	Use:   "print <layout-file>",
	Short: "Pretty-print a layout file",
	Long: `Parse a layout file and render each layer as a grid with 1-based
row and column headers.

Set named_output: true in the config file to make --names the default.`,
	Example: `  # Raw key code values
  blctl print modelm.txt

  # HID usage names where known (ESC, LSHIFT, F1, ...)
  blctl print modelm.txt --names`,
	Args: cobra.ExactArgs(1),
	RunE: runPrint,
}

func init() {
	printCmd.Flags().BoolVar(&useNames, "names", false, "Render key codes as HID usage names")
	readCmd.Flags().BoolVar(&useNames, "names", false, "Render key codes as HID usage names")
}

func runPrint(cmd *cobra.Command, args []string) error {
	m, err := layout.ParseFile(args[0])
	if err != nil {
		return err
	}

	if name := nameLookup(); name != nil {
		fmt.Print(m.FormatGridNamed(name))
	} else {
		fmt.Print(m.FormatGrid())
	}
	return nil
}

// convertCmd compiles a layout file to its binary form on disk
var convertCmd = &cobra.Command{
	Use:   "convert <layout-file>",
	Short: "Compile a layout file to the controller's binary format",
	Long: `Parse a layout file and write the encoded blob to disk.

The blob is the exact byte sequence the controller consumes: a 16-bit
little-endian layer count followed by every key code as a 16-bit
little-endian value in layer, row, column order.`,
	Example: `  # Writes modelm.txt.bin next to the input
  blctl convert modelm.txt

  # Explicit output path
  blctl convert modelm.txt -o layout.bin`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Output file (default: <layout-file>.bin)")
	readCmd.Flags().StringVarP(&outputPath, "output", "o", "", "Also save the raw blob to this file")
}

func runConvert(cmd *cobra.Command, args []string) error {
	m, err := layout.ParseFile(args[0])
	if err != nil {
		return err
	}

	data := m.Encode()
	logging.LogRawBytes("encoded layout", data)

	out := outputPath
	if out == "" {
		out = args[0] + ".bin"
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", out, err)
	}

	fmt.Printf("%s: %s -> %s (%d bytes)\n", args[0], m.Summary(), out, len(data))
	return nil
}

// writeCmd flashes a layout file to the keyboard
var writeCmd = &cobra.Command{
	Use:   "write <layout-file>",
	Short: "Flash a layout file to the keyboard",
	Long: `Parse and encode a layout file, then write it to the controller over
its serial configuration channel.

The port from the last successful flash is remembered as the default, so
--port is only needed the first time or when switching keyboards. A
confirmation prompt is shown before writing; pass --yes to skip it.`,
	Example: `  # First flash
  blctl write modelm.txt --port /dev/ttyACM0

  # Subsequent flashes reuse the remembered port
  blctl write modelm.txt --yes`,
	Args: cobra.ExactArgs(1),
	RunE: runWrite,
}

func init() {
	writeCmd.Flags().StringVar(&serialPort, "port", "", "Serial port of the keyboard controller")
	readCmd.Flags().StringVar(&serialPort, "port", "", "Serial port of the keyboard controller")
	writeCmd.Flags().BoolVarP(&skipConfirm, "yes", "y", false, "Skip the confirmation prompt")
}

func runWrite(cmd *cobra.Command, args []string) error {
	m, err := layout.ParseFile(args[0])
	if err != nil {
		return err
	}
	data := m.Encode()
	logging.LogRawBytes("encoded layout", data)

	port, err := resolvePort()
	if err != nil {
		return err
	}

	reg, err := config.LoadRegistry()
	if err != nil {
		return err
	}

	if !skipConfirm && reg.Preferences.ConfirmFlash {
		if !ui.ConfirmFlash(port, m.LayerCount()) {
			return nil
		}
	}

	tr, err := device.OpenSerial(port, logging.GetLogger())
	if err != nil {
		fmt.Println(ui.NewFailureResult("Could not open serial port", err, []string{
			"Check that the keyboard is plugged in",
			"Verify the port path (ls /dev/ttyACM* on Linux)",
			"Make sure your user has permission to open the port (dialout group on Linux)",
		}).Render())
		return err
	}
	defer tr.Close()

	if err := tr.WriteLayout(data, m.LayerCount()); err != nil {
		logging.Error("Layout write failed", zap.String("port", port), zap.Error(err))
		fmt.Println(ui.NewFailureResult("Layout write failed", err, []string{
			"Do not unplug the keyboard, retry the write",
			"Check that no other program has the port open",
			"Power-cycle the keyboard if the controller stopped responding",
		}).Render())
		return err
	}

	reg.RecordFlash(port, args[0], m.LayerCount())
	if err := reg.Save(); err != nil {
		logging.Warn("Could not save registry", zap.Error(err))
	}

	fmt.Println(ui.NewSuccessResult("Layout written", map[string]string{
		"Port":   port,
		"Layout": args[0],
		"Layers": fmt.Sprintf("%d", m.LayerCount()),
		"Size":   fmt.Sprintf("%d bytes", len(data)),
	}).Render())
	return nil
}

// readCmd reads the flashed layout back from the keyboard
var readCmd = &cobra.Command{
	Use:   "read",
	Short: "Read the layout currently flashed on the keyboard",
	Long: `Read the layout blob back from the controller, decode it, and render
it as per-layer grids. Useful for verifying a flash or recovering a layout
whose source file was lost.`,
	Example: `  blctl read --port /dev/ttyACM0

  # Save the raw blob as well
  blctl read --port /dev/ttyACM0 -o current.bin --names`,
	Args: cobra.NoArgs,
	RunE: runRead,
}

func runRead(cmd *cobra.Command, args []string) error {
	port, err := resolvePort()
	if err != nil {
		return err
	}

	tr, err := device.OpenSerial(port, logging.GetLogger())
	if err != nil {
		return err
	}
	defer tr.Close()

	blob, err := tr.ReadLayout()
	if err != nil {
		logging.Error("Layout read failed", zap.String("port", port), zap.Error(err))
		fmt.Println(ui.NewFailureResult("Layout read failed", err, []string{
			"Check that the keyboard is plugged in and the port path is right",
			"Check that no other program has the port open",
		}).Render())
		return err
	}
	logging.LogRawBytes("layout blob from device", blob)

	m, err := layout.Decode(blob)
	if err != nil {
		return fmt.Errorf("device returned an invalid layout blob: %w", err)
	}

	if outputPath != "" {
		if err := os.WriteFile(outputPath, blob, 0644); err != nil {
			return fmt.Errorf("failed to write %s: %w", outputPath, err)
		}
		fmt.Printf("Saved %d bytes to %s\n\n", len(blob), outputPath)
	}

	if name := nameLookup(); name != nil {
		fmt.Print(m.FormatGridNamed(name))
	} else {
		fmt.Print(m.FormatGrid())
	}
	return nil
}
