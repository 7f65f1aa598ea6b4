package nbstat

import (
	"bufio"
	"fmt"
	"io"
	"net"
	"strings"
)

// FormatHardwareAddr renders hw as upper case hex bytes joined by sep.
func FormatHardwareAddr(hw net.HardwareAddr, sep string) string {
	parts := make([]string, len(hw))
	for i, b := range hw {
		parts[i] = fmt.Sprintf("%02X", b)
	}
	return strings.Join(parts, sep)
}

func printableName(name [NameSize]byte) string {
	var sb strings.Builder
	for _, ch := range name {
		if ch >= 0x20 && ch <= 0x7E {
			sb.WriteByte(ch)
		} else {
			sb.WriteByte('.')
		}
	}
	return sb.String()
}

// WriteTable prints r in the layout of nbtstat -A.
func WriteTable(w io.Writer, r *Result) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "    NetBIOS Remote Machine Table")
	fmt.Fprintln(bw)
	fmt.Fprintln(bw, "       Name             Type   Status     Description")
	fmt.Fprintln(bw, "    ----------------------------------------------")

	for _, e := range r.Names {
		kind := "UNIQUE"
		if e.Flags.Group() {
			kind = "GROUP "
		}

		fmt.Fprintf(
			bw,
			"    %s<%02X> %s Registered %s\n",
			printableName(e.Name),
			e.Suffix,
			kind,
			ServiceName(e.Flags.Group(), e.Suffix),
		)
	}

	fmt.Fprintf(bw, "\n    MAC Address = %s\n", FormatHardwareAddr(r.HardwareAddr, "-"))
	return bw.Flush()
}
