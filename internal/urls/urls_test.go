package urls

import "testing"

func TestUserRoutes(t *testing.T) {
	if got := UserHomes("u-1"); got != "/api/v1/users/u-1/homes" {
		t.Errorf("UserHomes = %q", got)
	}
	if got := UserHome("u-1", "Base"); got != "/api/v1/users/u-1/homes/Base" {
		t.Errorf("UserHome = %q", got)
	}
	if got := UserSlots("u-1"); got != "/api/v1/users/u-1/slots" {
		t.Errorf("UserSlots = %q", got)
	}
}

func TestRoutesEscapeNames(t *testing.T) {
	if got := UserHome("u-1", "a/b"); got != "/api/v1/users/u-1/homes/a%2Fb" {
		t.Errorf("UserHome with slash = %q", got)
	}
	if got := Warp("spawn hub"); got != "/api/v1/warps/spawn%20hub" {
		t.Errorf("Warp with space = %q", got)
	}
}

func TestWebsocket(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"http://play.example.net:8455", "ws://play.example.net:8455/api/v1/events"},
		{"https://play.example.net", "wss://play.example.net/api/v1/events"},
		{"http://play.example.net:8455/", "ws://play.example.net:8455/api/v1/events"},
	}
	for _, tt := range tests {
		got, err := Websocket(tt.base)
		if err != nil {
			t.Fatalf("Websocket(%q): %v", tt.base, err)
		}
		if got != tt.want {
			t.Errorf("Websocket(%q) = %q, want %q", tt.base, got, tt.want)
		}
	}
}
