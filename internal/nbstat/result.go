package nbstat

import (
	"net"
	"strings"
)

// Result is what a node status query reports about a host.
type Result struct {
	Addr         net.Addr
	HardwareAddr net.HardwareAddr
	Count        int
	Names        []NameEntry
}

func NewResult(addr net.Addr, resp *Response) *Result {
	return &Result{
		Addr:         addr,
		HardwareAddr: resp.Statistics.HardwareAddr(),
		Count:        len(resp.Names),
		Names:        resp.Names,
	}
}

// Hostname returns the first unique workstation name, or "" if the node
// registered none.
func (r *Result) Hostname() string {
	for _, e := range r.Names {
		if e.Suffix == SuffixWorkstation && !e.Flags.Group() {
			return strings.TrimRight(string(e.Name[:]), " \x00")
		}
	}
	return ""
}
