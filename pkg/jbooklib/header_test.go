package jbooklib

import (
	"net/http"
	"testing"
)

func TestHeaders_Update(t *testing.T) {
	type args struct {
		key   string
		value string
	}
	tests := []struct {
		name string
		h    *Headers
		args args
	}{
		{
			"new entry", &Headers{}, args{USER_AGENT_KEY, DEF_USER_AGENT},
		},
		{
			"existing entry", &Headers{{USER_AGENT_KEY, "TestUA/12.3"}}, args{USER_AGENT_KEY, DEF_USER_AGENT},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.h.Update(tt.args.key, tt.args.value)
			i, ok := tt.h.Get(USER_AGENT_KEY)
			if !ok || (*tt.h)[i].Value != tt.args.value {
				t.Errorf("Headers.Update() did not update: %v", tt.h)
			}
		})
	}
}

func TestHeaders_InitOrUpdate(t *testing.T) {
	h := Headers{{USER_AGENT_KEY, "TestUA/12.3"}}
	h.InitOrUpdate(USER_AGENT_KEY, DEF_USER_AGENT)
	if i, _ := h.Get(USER_AGENT_KEY); h[i].Value != "TestUA/12.3" {
		t.Errorf("InitOrUpdate overwrote existing entry: %v", h)
	}
	h.InitOrUpdate(ACCEPT_KEY, "*/*")
	if _, ok := h.Get(ACCEPT_KEY); !ok {
		t.Errorf("InitOrUpdate did not add missing entry: %v", h)
	}
}

func TestDefaultHeaders(t *testing.T) {
	h := DefaultHeaders()
	hdr := make(http.Header)
	h.Set(hdr)
	if got := hdr.Get(USER_AGENT_KEY); got != DEF_USER_AGENT {
		t.Errorf("User-Agent = %q, want %q", got, DEF_USER_AGENT)
	}
	if got := hdr.Get(ACCEPT_KEY); got != "*/*" {
		t.Errorf("Accept = %q, want */*", got)
	}

	// mutating the returned set must not leak into later calls
	h.Update(USER_AGENT_KEY, "Other/1.0")
	if i, _ := DefaultHeaders().Get(USER_AGENT_KEY); DefaultHeaders()[i].Value != DEF_USER_AGENT {
		t.Error("DefaultHeaders returned a shared slice")
	}
}

func TestResolveUserAgent(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"known lowercase", "chrome", DEF_USER_AGENT},
		{"known mixed case", "FireFox", UserAgents["firefox"]},
		{"literal passthrough", "curl/8.0", "curl/8.0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolveUserAgent(tt.in); got != tt.want {
				t.Errorf("ResolveUserAgent(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
