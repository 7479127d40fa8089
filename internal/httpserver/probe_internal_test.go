package httpserver

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLoopbackURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		addr    string
		want    string
		wantErr bool
	}{
		{name: "ipv6 wildcard", addr: "[::]:5000", want: "http://127.0.0.1:5000/health"},
		{name: "ipv4 wildcard", addr: "0.0.0.0:9100", want: "http://127.0.0.1:9100/health"},
		{name: "empty host", addr: ":5000", want: "http://127.0.0.1:5000/health"},
		{name: "bound host kept", addr: "10.1.2.3:5000", want: "http://10.1.2.3:5000/health"},
		{name: "not started", addr: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := loopbackURL(tt.addr, healthPath)
			if tt.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestProbe(t *testing.T) {
	t.Parallel()

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == healthPath {
			w.WriteHeader(http.StatusOK)

			return
		}

		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(upstream.Close)

	addr := strings.TrimPrefix(upstream.URL, "http://")

	require.NoError(t, probe(t.Context(), addr, healthPath))
	require.ErrorIs(t, probe(t.Context(), addr, metricsPath), ErrProbeFailed)
}
