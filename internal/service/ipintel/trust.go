package ipintel

import "strings"

// TrustRule decides whether metadata describes the shop's own network.
// Mobile-carrier and anonymizing attributions always veto, regardless of any
// allow-list match.
type TrustRule struct {
	ISPNames []string // case-insensitive substrings matched against org/company/ASN names
	ASNs     []string // autonomous system numbers, e.g. "AS131445"
}

// Trusted applies the deny-list veto first, then the ISP/AS allow-list.
func (r TrustRule) Trusted(info Info) bool {
	if info.Carrier != nil && info.Carrier.Name != "" {
		return false
	}
	if p := info.Privacy; p != nil && (p.Hosting || p.Proxy || p.VPN || p.Tor) {
		return false
	}

	if info.ASN != nil {
		for _, asn := range r.ASNs {
			if strings.EqualFold(info.ASN.ASN, asn) {
				return true
			}
		}
	}

	var names []string
	if info.Org != "" {
		names = append(names, info.Org)
	}
	if info.Company != nil {
		names = append(names, info.Company.Name)
	}
	if info.ASN != nil {
		names = append(names, info.ASN.Name)
	}

	for _, isp := range r.ISPNames {
		for _, name := range names {
			if strings.Contains(strings.ToLower(name), strings.ToLower(isp)) {
				return true
			}
		}
	}

	return false
}
