/*
Copyright 2025 Trident Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package rawurl

import (
	"strconv"
	"strings"

	"golang.org/x/net/idna"
	"golang.org/x/text/unicode/norm"
)

// maxPort is the largest valid TCP/UDP port.
const maxPort = 65535

// defaultPorts maps special schemes to their default port. A scheme present
// here with a zero port has no default port but still requires a host.
var defaultPorts = map[string]int{
	"http":  80,
	"https": 443,
	"ws":    80,
	"wss":   443,
	"ftp":   21,
	"file":  0,
}

// isSpecial reports whether scheme is one of the special schemes.
func isSpecial(scheme string) bool {
	_, ok := defaultPorts[scheme]
	return ok
}

// splitAuthority splits an authority into host and port. Any userinfo
// before the last '@' is discarded.
func splitAuthority(authority string) (string, string) {
	hostport := authority
	if i := strings.LastIndexByte(authority, '@'); i != -1 {
		hostport = authority[i+1:]
	}

	if strings.HasPrefix(hostport, "[") {
		endBracket := strings.LastIndexByte(hostport, ']')
		if endBracket == -1 {
			return hostport, ""
		}
		host := hostport[:endBracket+1]
		if len(hostport) > endBracket+1 && hostport[endBracket+1] == ':' {
			return host, hostport[endBracket+2:]
		}
		return host, ""
	}

	if i := strings.LastIndexByte(hostport, ':'); i != -1 {
		return hostport[:i], hostport[i+1:]
	}
	return hostport, ""
}

// parseHost lower-cases the host and converts internationalized labels to
// their ASCII form. IP literals are returned unchanged.
func parseHost(host string) (string, error) {
	if host == "" || strings.HasPrefix(host, "[") {
		if strings.HasPrefix(host, "[") && !strings.HasSuffix(host, "]") {
			return "", &kindError{message: "Unterminated IP literal", details: host}
		}
		return host, nil
	}

	for _, r := range host {
		if strings.ContainsRune(" <>\\^|[]%", r) {
			return "", &kindError{message: "Invalid character in host", char: r}
		}
	}

	ascii, err := idna.ToASCII(norm.NFC.String(strings.ToLower(host)))
	if err != nil {
		return "", &kindError{message: "Invalid host", details: host}
	}
	return ascii, nil
}

// parsePort validates a decimal port. It returns 0 when the port is empty
// or equals the default port of the scheme.
func parsePort(port, scheme string) (int, error) {
	if port == "" {
		return 0, nil
	}
	for _, r := range port {
		if !isASCIIDigit(r) {
			return 0, &kindError{message: "Invalid port character", char: r}
		}
	}
	n, err := strconv.Atoi(port)
	if err != nil || n > maxPort {
		return 0, &kindError{message: "Port out of range", details: port}
	}
	if def, ok := defaultPorts[scheme]; ok && def != 0 && def == n {
		return 0, nil
	}
	return n, nil
}
