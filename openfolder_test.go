package intake

import "testing"

func TestOpenerFor(t *testing.T) {
	tests := []struct {
		goos    string
		cmd     string
		wantErr bool
	}{
		{"linux", "xdg-open", false},
		{"darwin", "open", false},
		{"windows", "explorer", false},
		{"plan9", "", true},
		{"", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.goos, func(t *testing.T) {
			op, err := openerFor(tt.goos)
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error")
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if op.cmd != tt.cmd {
				t.Errorf("got %q, want %q", op.cmd, tt.cmd)
			}
		})
	}
}
