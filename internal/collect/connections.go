package collect

import (
	"fmt"

	psnet "github.com/shirou/gopsutil/v3/net"
	"golang.org/x/sys/unix"

	"sysreport/internal/model"
)

func connectionsSection() model.ConnectionsSection {
	var sec model.ConnectionsSection
	sec.Listening = make([]model.Socket, 0)

	conns, err := psnet.Connections("inet")
	if err != nil {
		sec.Err = err.Error()
		return sec
	}

	for _, c := range conns {
		if c.Status != "LISTEN" {
			continue
		}
		sock := model.Socket{
			FD:     c.Fd,
			Family: familyName(c.Family),
			Type:   socketTypeName(c.Type),
			LAddr:  fmt.Sprintf("%s:%d", c.Laddr.IP, c.Laddr.Port),
			PID:    c.Pid,
		}
		if c.Raddr.IP != "" {
			sock.RAddr = fmt.Sprintf("%s:%d", c.Raddr.IP, c.Raddr.Port)
		}
		sec.Listening = append(sec.Listening, sock)
	}
	return sec
}

func familyName(family uint32) string {
	switch family {
	case unix.AF_INET:
		return "AF_INET"
	case unix.AF_INET6:
		return "AF_INET6"
	default:
		return fmt.Sprintf("family(%d)", family)
	}
}

func socketTypeName(sockType uint32) string {
	switch sockType {
	case unix.SOCK_STREAM:
		return "SOCK_STREAM"
	case unix.SOCK_DGRAM:
		return "SOCK_DGRAM"
	default:
		return fmt.Sprintf("type(%d)", sockType)
	}
}
