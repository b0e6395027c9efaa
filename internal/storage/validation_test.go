package storage

import (
	"context"
	"testing"
	"time"

	"github.com/hjkim0226-droid/ae-folder-organizer-sub000/internal/model"
)

func TestValidateContext(t *testing.T) {
	tests := []struct {
		ctx     context.Context
		name    string
		wantErr bool
	}{
		{
			name:    "valid context",
			ctx:     context.Background(),
			wantErr: false,
		},
		{
			name:    "nil context",
			ctx:     nil,
			wantErr: true,
		},
		{
			name: "canceled context still valid",
			ctx: func() context.Context {
				ctx, cancel := context.WithCancel(context.Background())
				cancel()
				return ctx
			}(),
			wantErr: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateContext(tt.ctx)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateContext() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateString(t *testing.T) {
	tests := []struct {
		name      string
		str       string
		paramName string
		wantErr   bool
	}{
		{
			name:      "valid string",
			str:       "ledger.db",
			paramName: "dbPath",
			wantErr:   false,
		},
		{
			name:      "empty string",
			str:       "",
			paramName: "dbPath",
			wantErr:   true,
		},
		{
			name:      "whitespace only",
			str:       "   ",
			paramName: "dbPath",
			wantErr:   true,
		},
		{
			name:      "string with surrounding spaces",
			str:       "  ledger.db  ",
			paramName: "dbPath",
			wantErr:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateString(tt.str, tt.paramName)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateString() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateReport(t *testing.T) {
	tests := []struct {
		report  *model.RunReport
		name    string
		wantErr bool
	}{
		{
			name: "valid report",
			report: &model.RunReport{
				StartedAt:  time.Now(),
				FinishedAt: time.Now(),
			},
			wantErr: false,
		},
		{
			name:    "nil report",
			report:  nil,
			wantErr: true,
		},
		{
			name:    "missing start time",
			report:  &model.RunReport{},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateReport(tt.report)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateReport() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
