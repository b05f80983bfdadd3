package netinfo

import (
	"fmt"
	"net"
)

// LANIPv4 returns the non-loopback IPv4 addresses of the host's interfaces.
func LANIPv4() ([]net.IP, error) {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return nil, fmt.Errorf("list interface addresses: %w", err)
	}
	return FilterIPv4(addrs), nil
}

func FilterIPv4(addrs []net.Addr) []net.IP {
	var out []net.IP
	for _, a := range addrs {
		var ip net.IP
		switch v := a.(type) {
		case *net.IPNet:
			ip = v.IP
		case *net.IPAddr:
			ip = v.IP
		default:
			continue
		}
		ip4 := ip.To4()
		if ip4 == nil || ip4.IsLoopback() {
			continue
		}
		out = append(out, ip4)
	}
	return out
}

// URLs turns addresses into http URLs on port.
func URLs(ips []net.IP, port string) []string {
	out := make([]string, 0, len(ips))
	for _, ip := range ips {
		out = append(out, "http://"+net.JoinHostPort(ip.String(), port))
	}
	return out
}
