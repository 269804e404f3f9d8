package netutil

import (
	"net"
)

// GetPrivateIP returns a private IP address, or panics if no IP is available.
// IPv4 addresses are preferred when an interface carries both families.
func GetPrivateIP() net.IP {
	addrs, _ := net.InterfaceAddrs()

	var fallback net.IP
	for _, addr := range addrs {
		ipnet, ok := addr.(*net.IPNet)
		if !ok || ipnet.IP.IsLoopback() {
			continue
		}
		if ip4 := ipnet.IP.To4(); ip4 != nil {
			return ip4
		}
		if fallback == nil {
			fallback = ipnet.IP
		}
	}

	if fallback == nil {
		panic("No private IP address is available")
	}
	return fallback
}
