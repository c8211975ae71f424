package ipintel

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrustRule(t *testing.T) {
	rule := TrustRule{
		ISPNames: []string{"Shop Fiber", "MegaNet"},
		ASNs:     []string{"AS131445"},
	}

	tests := []struct {
		name string
		info Info
		want bool
	}{
		{
			name: "isp name substring match",
			info: Info{Org: "AS9999 Shop Fiber Broadband"},
			want: true,
		},
		{
			name: "company name match case-insensitive",
			info: Info{Company: &Company{Name: "MEGANET co., ltd"}},
			want: true,
		},
		{
			name: "asn allow-list match",
			info: Info{ASN: &ASN{ASN: "AS131445", Name: "Some Upstream"}},
			want: true,
		},
		{
			name: "vpn vetoes even with isp match",
			info: Info{
				Org:     "Shop Fiber Broadband",
				Privacy: &Privacy{VPN: true},
			},
			want: false,
		},
		{
			name: "hosting vetoes asn match",
			info: Info{
				ASN:     &ASN{ASN: "AS131445"},
				Privacy: &Privacy{Hosting: true},
			},
			want: false,
		},
		{
			name: "tor vetoes",
			info: Info{Org: "MegaNet", Privacy: &Privacy{Tor: true}},
			want: false,
		},
		{
			name: "proxy vetoes",
			info: Info{Org: "MegaNet", Privacy: &Privacy{Proxy: true}},
			want: false,
		},
		{
			name: "mobile carrier vetoes",
			info: Info{
				Org:     "MegaNet",
				Carrier: &Carrier{Name: "AIS", MCC: "520"},
			},
			want: false,
		},
		{
			name: "no match at all",
			info: Info{Org: "Random ISP", ASN: &ASN{ASN: "AS1234"}},
			want: false,
		},
		{
			name: "empty metadata",
			info: Info{},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, rule.Trusted(tt.info))
		})
	}
}
