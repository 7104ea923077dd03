package lookup

import (
	"fmt"
	"strings"

	"github.com/miekg/dns"

	"iplook/structs"
)

// addRDNS adds the PTR name for addr to rec. The provider fills hostname
// itself on some plans, so the PTR goes into ptr when hostname is taken.
func (c *Client) addRDNS(addr string, rec *structs.Record) {
	name, err := c.reverse(addr)
	if err != nil {
		log.Debugf("rdns %s: %s", addr, err)
		return
	}
	if _, ok := rec.Get("hostname"); ok {
		rec.Set("ptr", name)
		return
	}
	rec.Set("hostname", name)
}

func (c *Client) reverse(addr string) (string, error) {
	rev, err := dns.ReverseAddr(addr)
	if err != nil {
		return "", err
	}
	cl := new(dns.Client)
	cl.Timeout = c.Timeout
	m := prepMsg()
	m.Question[0] = dns.Question{Name: rev, Qtype: dns.TypePTR, Qclass: dns.ClassINET}
	log.Debugf("asking %s for PTR of %s", c.Resolver, addr)
	in, _, err := cl.Exchange(m, c.Resolver)
	if err != nil {
		return "", err
	}
	for _, rr := range in.Answer {
		if ptr, ok := rr.(*dns.PTR); ok {
			return strings.TrimSuffix(ptr.Ptr, "."), nil
		}
	}
	return "", fmt.Errorf("no PTR for %s", addr)
}

func prepMsg() *dns.Msg {
	m := new(dns.Msg)
	m.Id = dns.Id()
	m.RecursionDesired = true
	m.Question = make([]dns.Question, 1)
	return m
}
