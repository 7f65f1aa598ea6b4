package nbstat

const (
	SuffixWorkstation         byte = 0x00
	SuffixMasterBrowser       byte = 0x01
	SuffixDomainMasterBrowser byte = 0x1B
	SuffixLocalMasterBrowser  byte = 0x1D
	SuffixBrowserElection     byte = 0x1E
	SuffixFileServer          byte = 0x20
)

type serviceKey struct {
	group  bool
	suffix byte
}

var services = map[serviceKey]string{
	{false, SuffixWorkstation}:         "Workstation Service",
	{true, SuffixWorkstation}:          "Browser Client",
	{true, SuffixMasterBrowser}:        "Master Browser",
	{false, SuffixDomainMasterBrowser}: "Domain Master Browser",
	{false, SuffixLocalMasterBrowser}:  "Master Browser",
	{true, SuffixBrowserElection}:      "Browser Service Elections",
	{false, SuffixFileServer}:          "Default Name",
}

// ServiceName describes the service a name with the given suffix provides.
func ServiceName(group bool, suffix byte) string {
	if name, ok := services[serviceKey{group, suffix}]; ok {
		return name
	}
	return "Unknown"
}
