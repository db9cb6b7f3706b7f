package settings

import "testing"

func TestSettings_CellSize(t *testing.T) {
	tests := []struct {
		name       string
		display    DisplayConfig
		wantWidth  int
		wantHeight int
	}{
		{name: "Configured", display: DisplayConfig{CellWidth: 10, CellHeight: 20}, wantWidth: 10, wantHeight: 20},
		{name: "Zero", display: DisplayConfig{}, wantWidth: DefaultCellWidth, wantHeight: DefaultCellHeight},
		{name: "Negative", display: DisplayConfig{CellWidth: -1, CellHeight: 18}, wantWidth: DefaultCellWidth, wantHeight: 18},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, h := Settings{Display: tt.display}.CellSize()
			if w != tt.wantWidth || h != tt.wantHeight {
				t.Errorf("CellSize() = (%d, %d), want (%d, %d)", w, h, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}
