package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/mmynk/servicecharge/internal/models"
)

// ReadBillFile loads a bill from a JSON file in the web app's storage layout.
// A missing garage object loads as an empty garage. Amounts that are not
// numbers, or too large to calculate with, are rejected here.
func ReadBillFile(path string) (*models.BillData, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read bill file: %w", err)
	}

	var bill models.BillData
	if err := json.Unmarshal(data, &bill); err != nil {
		return nil, fmt.Errorf("failed to decode bill file %s: %w", path, err)
	}
	if rangeErrs := rangeErrors(&bill); len(rangeErrs) > 0 {
		errs := make([]error, len(rangeErrs))
		for i, e := range rangeErrs {
			errs[i] = e
		}
		return nil, fmt.Errorf("bill file %s: %w", path, errors.Join(errs...))
	}
	if bill.Categories == nil {
		bill.Categories = []models.ServiceCategory{}
	}
	return &bill, nil
}

// WriteBillFile saves bill as indented JSON, replacing any existing file.
func WriteBillFile(path string, bill *models.BillData) error {
	data, err := json.MarshalIndent(bill, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode bill: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("failed to write bill file: %w", err)
	}
	return nil
}
