package storkutil

import (
	"bytes"
	"net"
	"strings"

	cidr "github.com/apparentlymart/go-cidr/cidr"
	"github.com/pkg/errors"
)

// IP protocol type.
type IPType int

// IP protocol type enum.
const (
	IPv4 IPType = 4
	IPv6 IPType = 6
)

// Structure returned by ParseIP function. It comprises the information about
// the parsed IP address or prefix.
type ParsedIP struct {
	NetworkAddress string // Full address or prefix e.g. 192.0.2.0/24.
	Protocol       IPType // Detected IP type: IPv4 or IPv6.
	PrefixLength   int    // Network address mask.
	Prefix         bool   // Boolean indicating if it is an address or prefix.
	IP             net.IP
	IPNet          *net.IPNet
}

// Parses an IP address or prefix and returns parsed information in the
// structure. If the specified value is invalid, a nil structure is
// returned.
func ParseIP(address string) *ParsedIP {
	parsed := &ParsedIP{}

	address = strings.TrimSpace(address)

	// Check if this is an IP address without a prefix length.
	parsed.IP = net.ParseIP(address)
	if parsed.IP == nil {
		// Apparently it comprises a prefix length.
		ip, ipNet, err := net.ParseCIDR(address)
		if err != nil {
			// It is neither an IP address nor prefix.
			return nil
		}
		parsed.IP = ip
		parsed.IPNet = ipNet
	}

	if parsed.IPNet != nil {
		ones, bits := parsed.IPNet.Mask.Size()
		if ones != bits {
			parsed.NetworkAddress = parsed.IPNet.String()
			parsed.PrefixLength = ones
			parsed.Prefix = true
		}
	}

	if !parsed.Prefix {
		parsed.NetworkAddress = parsed.IP.String()
	}

	if parsed.IP.To4() != nil {
		if parsed.PrefixLength == 0 {
			parsed.PrefixLength = 32
		}
		parsed.Protocol = IPv4
	} else {
		if parsed.PrefixLength == 0 {
			parsed.PrefixLength = 128
		}
		parsed.Protocol = IPv6
	}
	return parsed
}

// Checks if an IP address is within the range of addresses between the
// lb (lower bound) and ub (upper bound).
func (parsed *ParsedIP) IsInRange(lb, ub net.IP) bool {
	if parsed.Prefix {
		return false
	}
	// Convert to 16 bytes. It makes the comparison common for both
	// the IPv4 and IPv6 case.
	ip16 := parsed.IP.To16()
	return bytes.Compare(ip16, lb.To16()) >= 0 && bytes.Compare(ip16, ub.To16()) <= 0
}

// Combines the IPv4 network address and the dotted subnet mask (e.g.,
// 192.0.2.0 and 255.255.255.0) into a network. The address is masked,
// so a host address within the network is accepted too.
func ParseIPv4Subnet(address, mask string) (*net.IPNet, error) {
	ip := net.ParseIP(strings.TrimSpace(address)).To4()
	if ip == nil {
		return nil, errors.Errorf("invalid IPv4 network address %s", address)
	}
	maskIP := net.ParseIP(strings.TrimSpace(mask)).To4()
	if maskIP == nil {
		return nil, errors.Errorf("invalid IPv4 subnet mask %s", mask)
	}
	ipMask := net.IPv4Mask(maskIP[0], maskIP[1], maskIP[2], maskIP[3])
	if ones, bits := ipMask.Size(); ones == 0 && bits == 0 {
		return nil, errors.Errorf("subnet mask %s is not contiguous", mask)
	}
	return &net.IPNet{
		IP:   ip.Mask(ipMask),
		Mask: ipMask,
	}, nil
}

// Returns lower and upper bound addresses of the address range. The address
// range may follow two conventions, e.g., 192.0.2.1 - 192.0.3.10
// or 192.0.2.0/24. Both IPv4 and IPv6 ranges are supported by this function.
func ParseIPRange(ipRange string) (net.IP, net.IP, error) {
	s := strings.Split(ipRange, "-")
	for i := 0; i < len(s); i++ {
		s[i] = strings.TrimSpace(s[i])
	}
	switch len(s) {
	case 2:
		lb := net.ParseIP(s[0])
		ub := net.ParseIP(s[1])
		if lb == nil || ub == nil {
			return nil, nil, errors.Errorf("unable to parse the IP range %s", ipRange)
		}
		if (lb.To4() == nil) != (ub.To4() == nil) {
			return nil, nil, errors.Errorf("IP addresses in the IP range %s must belong to the same family",
				ipRange)
		}
		return lb, ub, nil

	case 1:
		// There is one token only, so apparently this is a range provided as a prefix.
		_, ipNet, err := net.ParseCIDR(s[0])
		if err != nil {
			return nil, nil, errors.Errorf("unable to parse the pool prefix %s", s[0])
		}
		lb, ub := cidr.AddressRange(ipNet)
		return lb, ub, nil

	default:
		return nil, nil, errors.Errorf("unable to parse the IP range %s", ipRange)
	}
}

// Checks if the address belongs to the network. The network and the
// broadcast addresses are considered members of the network.
func IsAddressInSubnet(address string, network *net.IPNet) bool {
	parsed := ParseIP(address)
	if parsed == nil || network == nil {
		return false
	}
	lb, ub := cidr.AddressRange(network)
	return parsed.IsInRange(lb, ub)
}

// Checks if the range between lb and ub (inclusive) is fully contained in
// the range between outerLb and outerUb. All addresses must be valid and
// both bounds of a range must belong to the same family, otherwise false is
// returned.
func IsRangeInRange(lb, ub, outerLb, outerUb string) bool {
	innerLb, innerUb, err := ParseIPRange(lb + "-" + ub)
	if err != nil {
		return false
	}
	outerLbIP, outerUbIP, err := ParseIPRange(outerLb + "-" + outerUb)
	if err != nil {
		return false
	}
	if bytes.Compare(innerLb.To16(), innerUb.To16()) > 0 {
		return false
	}
	parsed := &ParsedIP{IP: innerLb}
	if !parsed.IsInRange(outerLbIP, outerUbIP) {
		return false
	}
	parsed.IP = innerUb
	return parsed.IsInRange(outerLbIP, outerUbIP)
}
