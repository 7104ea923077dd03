package lookup

import (
	"net"

	"github.com/ammario/ipisp"

	"iplook/structs"
)

// addASN adds origin AS data from the Team Cymru DNS interface to rec.
func (c *Client) addASN(addr string, rec *structs.Record) {
	client, err := ipisp.NewDNSClient()
	if err != nil {
		log.Debugf("asn %s: %s", addr, err)
		return
	}
	defer client.Close()
	resp, err := client.LookupIP(net.ParseIP(addr))
	if err != nil {
		log.Debugf("asn %s: %s", addr, err)
		return
	}
	rec.Set("asn", resp.ASN.String())
	rec.Set("as_name", resp.Name.Raw)
}
