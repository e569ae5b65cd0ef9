package types

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPlacementSpec_PerHost(t *testing.T) {
	require.Equal(t, 1, PlacementSpec{}.PerHost())
	require.Equal(t, 1, PlacementSpec{CountPerHost: 1}.PerHost())
	require.Equal(t, 3, PlacementSpec{CountPerHost: 3}.PerHost())
}

func TestPlacementSpec_String(t *testing.T) {
	tests := []struct {
		name string
		spec PlacementSpec
		want string
	}{
		{name: "empty", spec: PlacementSpec{}, want: "<empty>"},
		{name: "count only", spec: PlacementSpec{Count: Count(3)}, want: "count:3"},
		{name: "label", spec: PlacementSpec{Label: "mon"}, want: "label:mon"},
		{name: "pattern", spec: PlacementSpec{HostPattern: "node-*"}, want: "host-pattern:node-*"},
		{
			name: "count and hosts",
			spec: PlacementSpec{Count: Count(2), Hosts: SlotsOf("h1", "h2")},
			want: "count:2;h1;h2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.spec.String())
		})
	}
}

func TestServiceSpec_ServiceName(t *testing.T) {
	require.Equal(t, "mgr.foo", ServiceSpec{ServiceType: "mgr", ServiceID: "foo"}.ServiceName())
	require.Equal(t, "crash", ServiceSpec{ServiceType: "crash"}.ServiceName())
}

func TestDaemonDescription_Name(t *testing.T) {
	require.Equal(t, "mgr.a", DaemonDescription{DaemonType: "mgr", DaemonID: "a"}.Name())
	require.Equal(t, "crash", DaemonDescription{DaemonType: "crash"}.Name())
}

func TestHostSpec_HasLabel(t *testing.T) {
	h := HostSpec{Hostname: "h1", Labels: []string{"mon", "mgr"}}

	require.True(t, h.HasLabel("mon"))
	require.False(t, h.HasLabel("osd"))
	require.False(t, HostSpec{Hostname: "h2"}.HasLabel("mon"))
}
