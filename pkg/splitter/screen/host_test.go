package screen

import (
	"testing"

	"github.com/BrandonKowalski/splitter/pkg/splitter"
	"github.com/BrandonKowalski/splitter/pkg/splitter/layout"
)

func TestDismissButtonRejectsTwoSources(t *testing.T) {
	_, err := dismissButton(splitter.DismissConfig{Icon: "mail", Title: "Cancel"}, layout.Size{W: 40, H: 40})
	if !splitter.IsConfigurationError(err) {
		t.Fatalf("dismissButton = %v, want configuration error", err)
	}
}

func TestNewHostNeedsWindow(t *testing.T) {
	if window != nil {
		t.Skip("window already initialized")
	}
	_, err := NewHost(&Button{}, WithDismissTitle("Cancel"))
	if !splitter.IsInfrastructureError(err) {
		t.Fatalf("NewHost before Init = %v, want infrastructure error", err)
	}
}

func TestDismissOptions(t *testing.T) {
	tests := []struct {
		name string
		opt  HostOption
		want splitter.DismissKind
	}{
		{"icon", WithDismissIcon("mail"), splitter.DismissIcon},
		{"image", WithDismissImage("cancel.png"), splitter.DismissImage},
		{"title", WithDismissTitle("Cancel"), splitter.DismissTitle},
		{"config", WithDismiss(splitter.DismissConfig{}), splitter.DismissDefault},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s hostSettings
			tt.opt(&s)
			if got := s.dismiss.Kind(); got != tt.want {
				t.Errorf("kind = %v, want %v", got, tt.want)
			}
		})
	}
}
