package main

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/resume-screener/internal/schemas"
)

var snapshotServer string

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Export or import store snapshots against a running server",
}

var snapshotExportCmd = &cobra.Command{
	Use:   "export <output-file>",
	Short: "Download the full store state to a JSON file",
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshotExport,
}

var snapshotImportCmd = &cobra.Command{
	Use:   "import <input-file>",
	Short: "Replace the store state from a JSON file",
	Long:  `Validate a snapshot file against its schema and upload it, replacing all server-side state.`,
	Args:  cobra.ExactArgs(1),
	RunE:  runSnapshotImport,
}

func init() {
	snapshotCmd.PersistentFlags().StringVar(&snapshotServer, "server", "http://localhost:5000", "Base URL of the running server")
	snapshotCmd.AddCommand(snapshotExportCmd)
	snapshotCmd.AddCommand(snapshotImportCmd)
	rootCmd.AddCommand(snapshotCmd)
}

func snapshotClient() *http.Client {
	return &http.Client{Timeout: 60 * time.Second}
}

func runSnapshotExport(_ *cobra.Command, args []string) error {
	resp, err := snapshotClient().Get(snapshotServer + "/api/snapshot")
	if err != nil {
		return fmt.Errorf("failed to reach server: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("export failed with status %d: %s", resp.StatusCode, body)
	}

	out, err := os.Create(args[0])
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", args[0], err)
	}
	defer out.Close()

	n, err := io.Copy(out, resp.Body)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", args[0], err)
	}
	fmt.Printf("Exported %d bytes to %s\n", n, args[0])
	return nil
}

func runSnapshotImport(_ *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", args[0], err)
	}

	// Catch schema problems before touching server state.
	if err := schemas.ValidateSnapshot(data); err != nil {
		return err
	}

	resp, err := snapshotClient().Post(snapshotServer+"/api/snapshot", "application/json", bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to reach server: %w", err)
	}
	defer resp.Body.Close()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("import failed with status %d: %s", resp.StatusCode, body)
	}
	fmt.Printf("Imported snapshot: %s\n", body)
	return nil
}
