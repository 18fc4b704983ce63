package credentials

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultConfigPath(t *testing.T) {
	tests := []struct {
		name         string
		goos         string
		home         string
		localAppData string
		want         string
	}{
		{name: "linux", goos: "linux", home: "/home/dc", want: "/home/dc/.dragonchain/credentials"},
		{name: "darwin", goos: "darwin", home: "/Users/dc", want: "/Users/dc/.dragonchain/credentials"},
		{name: "windows", goos: "windows", home: `C:\Users\dc`, localAppData: `C:\Users\dc\AppData\Local`, want: `C:\Users\dc\AppData\Local\dragonchain\credentials`},
		{name: "windows trailing slash", goos: "windows", localAppData: `C:\Local\`, want: `C:\Local\dragonchain\credentials`},
		{name: "windows without LOCALAPPDATA", goos: "windows", want: `dragonchain\credentials`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultConfigPath(tt.goos, tt.home, tt.localAppData))
		})
	}
}
