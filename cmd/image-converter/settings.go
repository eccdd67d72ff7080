package main

import (
	"encoding/json"
	"fmt"
	"io"

	"image-converter/internal/settings"

	"github.com/spf13/cobra"
	"go.yaml.in/yaml/v3"
)

// settingsView is the machine-readable form of the stored settings.
type settingsView struct {
	File         string `json:"file" yaml:"file"`
	SaveLocation string `json:"saveLocation" yaml:"saveLocation"`
	SaveFormat   string `json:"saveFormat" yaml:"saveFormat"`
}

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Show or change the stored output settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the stored settings",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}

		output, _ := cmd.Flags().GetString("output")
		return writeSettings(cmd.OutOrStdout(), store, output)
	},
}

func writeSettings(out io.Writer, store *settings.Store, output string) error {
	view := settingsView{
		File:         store.Path(),
		SaveLocation: store.SaveLocation(),
		SaveFormat:   store.SaveFormat(),
	}

	switch output {
	case "text", "":
		fmt.Fprintf(out, "file: %s\n", view.File)
		for _, key := range settings.Keys {
			value, _ := store.Get(key)
			fmt.Fprintf(out, "%s: %s\n", key, value)
		}
	case "yaml":
		data, err := yaml.Marshal(view)
		if err != nil {
			return fmt.Errorf("marshal settings: %w", err)
		}
		_, err = out.Write(data)
		return err
	case "json":
		data, err := json.MarshalIndent(view, "", "  ")
		if err != nil {
			return fmt.Errorf("marshal settings: %w", err)
		}
		_, err = fmt.Fprintf(out, "%s\n", data)
		return err
	default:
		return fmt.Errorf("unsupported output %q: use text, yaml or json", output)
	}
	return nil
}

var settingsSetCmd = &cobra.Command{
	Use:   "set KEY VALUE",
	Short: "Store a setting (saveLocation or saveFormat)",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		key, ok := settings.IsKnownKey(args[0])
		if !ok {
			return fmt.Errorf("unknown setting %q, expected one of %v", args[0], settings.Keys)
		}

		store, err := openStore(cmd)
		if err != nil {
			return err
		}

		store.Set(key, args[1])
		if err := store.Save(); err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", key, args[1])
		return nil
	},
}

func init() {
	settingsShowCmd.Flags().String("output", "text", "output format: text, yaml or json")
	settingsCmd.AddCommand(settingsShowCmd, settingsSetCmd)
	rootCmd.AddCommand(settingsCmd)
}
