package collect

import "testing"

func TestParseAddrIPv4(t *testing.T) {
	addr, ok := parseAddr("192.168.1.5/24")
	if !ok {
		t.Fatal("parseAddr failed")
	}
	if addr.Family != "AF_INET" {
		t.Errorf("Family = %q, want AF_INET", addr.Family)
	}
	if addr.Address != "192.168.1.5" {
		t.Errorf("Address = %q", addr.Address)
	}
	if addr.Netmask != "255.255.255.0" {
		t.Errorf("Netmask = %q, want 255.255.255.0", addr.Netmask)
	}
	if addr.Broadcast != "192.168.1.255" {
		t.Errorf("Broadcast = %q, want 192.168.1.255", addr.Broadcast)
	}
}

func TestParseAddrIPv6(t *testing.T) {
	addr, ok := parseAddr("fe80::1/64")
	if !ok {
		t.Fatal("parseAddr failed")
	}
	if addr.Family != "AF_INET6" {
		t.Errorf("Family = %q, want AF_INET6", addr.Family)
	}
	if addr.Address != "fe80::1" {
		t.Errorf("Address = %q", addr.Address)
	}
	if addr.Broadcast != "" {
		t.Errorf("IPv6 should have no broadcast, got %q", addr.Broadcast)
	}
}

func TestParseAddrBareIP(t *testing.T) {
	addr, ok := parseAddr("10.0.0.7")
	if !ok {
		t.Fatal("parseAddr failed for a bare IP")
	}
	if addr.Family != "AF_INET" || addr.Address != "10.0.0.7" {
		t.Errorf("got %+v", addr)
	}
	if addr.Netmask != "" || addr.Broadcast != "" {
		t.Errorf("bare IP should carry no mask data, got %+v", addr)
	}
}

func TestParseAddrInvalid(t *testing.T) {
	if _, ok := parseAddr("not-an-address"); ok {
		t.Error("expected failure for a malformed address")
	}
}
