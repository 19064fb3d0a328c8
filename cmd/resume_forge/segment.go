package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/jonathan/resume-forge/internal/extraction"
	"github.com/jonathan/resume-forge/internal/segmentation"
	"github.com/spf13/cobra"
)

var segmentCmd = &cobra.Command{
	Use:   "segment",
	Short: "Segment a resume text file and print the result as JSON",
	Long:  "Segment splits a plain resume text file into canonical sections and prints the segmented structure, along with extracted contact fields, as indented JSON.",
	RunE:  runSegment,
}

var (
	segmentInputFile  string
	segmentOutputFile string
)

func init() {
	segmentCmd.Flags().StringVarP(&segmentInputFile, "in", "i", "", "Path to the raw resume text file (required)")
	segmentCmd.Flags().StringVarP(&segmentOutputFile, "out", "o", "", "Path to write the JSON to (default: stdout)")

	rootCmd.AddCommand(segmentCmd)
}

func runSegment(_ *cobra.Command, _ []string) error {
	if segmentInputFile == "" {
		return fmt.Errorf("input file is required (use --in)")
	}

	rawBytes, err := os.ReadFile(segmentInputFile)
	if err != nil {
		return fmt.Errorf("failed to read input file: %w", err)
	}
	rawText := string(rawBytes)

	result := struct {
		Contact  any `json:"contact"`
		Segments any `json:"segments"`
	}{
		Contact:  extraction.ExtractContact(rawText),
		Segments: segmentation.Segment(rawText),
	}

	jsonBytes, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	jsonBytes = append(jsonBytes, '\n')

	if segmentOutputFile == "" {
		_, err = os.Stdout.Write(jsonBytes)
		return err
	}
	if err := os.WriteFile(segmentOutputFile, jsonBytes, 0644); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}
