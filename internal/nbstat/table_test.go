package nbstat

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"net"
	"strings"
	"testing"
)

func TestServiceName(t *testing.T) {
	assert.Equal(t, "Workstation Service", ServiceName(false, SuffixWorkstation))
	assert.Equal(t, "Browser Client", ServiceName(true, SuffixWorkstation))
	assert.Equal(t, "Domain Master Browser", ServiceName(false, SuffixDomainMasterBrowser))
	assert.Equal(t, "Default Name", ServiceName(false, SuffixFileServer))
	assert.Equal(t, "Unknown", ServiceName(true, SuffixFileServer))
	assert.Equal(t, "Unknown", ServiceName(false, 0x6A))
}

func TestFormatHardwareAddr(t *testing.T) {
	hw := net.HardwareAddr{0xAA, 0xBB, 0xCC, 0xDD, 0xEE, 0x0F}

	assert.Equal(t, "AA-BB-CC-DD-EE-0F", FormatHardwareAddr(hw, "-"))
	assert.Equal(t, "AA:BB:CC:DD:EE:0F", FormatHardwareAddr(hw, ":"))
}

func TestWriteTable(t *testing.T) {
	entries := []testEntry{
		{"WORKSTATION", SuffixWorkstation, 0x0400},
		{"WORKGROUP", SuffixWorkstation, 0x8400},
		{"FILESERVER", SuffixFileServer, 0x0400},
	}
	resp, err := DecodeResponse(buildResponse(1, TypeNBSTAT, entries, testUnitID))
	require.NoError(t, err)
	resp.Names[2].Name[0] = 0x07

	buf := new(bytes.Buffer)
	require.NoError(t, WriteTable(buf, NewResult(nil, resp)))
	out := buf.String()

	t.Run("one line per name in order", func(t *testing.T) {
		lines := strings.Split(out, "\n")
		var rows []string
		for _, l := range lines {
			if strings.Contains(l, "Registered") {
				rows = append(rows, l)
			}
		}

		require.Len(t, rows, 3)
		assert.Equal(t, "    WORKSTATION    <00> UNIQUE Registered Workstation Service", rows[0])
		assert.Equal(t, "    WORKGROUP      <00> GROUP  Registered Browser Client", rows[1])
		assert.Equal(t, "    .ILESERVER     <20> UNIQUE Registered Default Name", rows[2])
	})

	t.Run("ends with the MAC address", func(t *testing.T) {
		assert.True(t, strings.HasSuffix(out, "MAC Address = AA-BB-CC-DD-EE-FF\n"))
	})
}

func TestResult(t *testing.T) {
	entries := []testEntry{
		{"WORKGROUP", SuffixWorkstation, 0x8400},
		{"HOST", SuffixFileServer, 0x0400},
		{"HOST", SuffixWorkstation, 0x0400},
	}
	resp, err := DecodeResponse(buildResponse(1, TypeNBSTAT, entries, testUnitID))
	require.NoError(t, err)

	addr := &net.UDPAddr{IP: net.IPv4(192, 168, 1, 200), Port: 137}
	r := NewResult(addr, resp)

	assert.Equal(t, addr, r.Addr)
	assert.Equal(t, 3, r.Count)
	assert.Equal(t, net.HardwareAddr(testUnitID[:]), r.HardwareAddr)
	assert.Equal(t, "HOST", r.Hostname())
	assert.Equal(t, "", (&Result{}).Hostname())
}
