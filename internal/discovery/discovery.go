// Package discovery анонсирует API инвентаря в локальной сети через mDNS и ищет его с касс.
package discovery

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"

	"github.com/grandcat/zeroconf"
)

// Domain - домен mDNS
const Domain = "local."

// ErrNotFound возвращается Lookup, если сервис не найден до истечения контекста
var ErrNotFound = errors.New("inventory API not found on the local network")

// Advertisement - зарегистрированный mDNS сервис
type Advertisement struct {
	server *zeroconf.Server
}

// Advertise регистрирует сервис service (например "_stockle._tcp") на порту port
func Advertise(instance, service string, port int, txt []string) (*Advertisement, error) {
	server, err := zeroconf.Register(instance, service, Domain, port, txt, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to register mDNS service: %w", err)
	}
	return &Advertisement{server: server}, nil
}

// Shutdown снимает анонс
func (a *Advertisement) Shutdown() {
	if a != nil && a.server != nil {
		a.server.Shutdown()
	}
}

// Lookup ищет первый экземпляр сервиса и возвращает его базовый URL вида http://host:port.
// Время поиска ограничивается ctx.
func Lookup(ctx context.Context, service string) (string, error) {
	resolver, err := zeroconf.NewResolver(nil)
	if err != nil {
		return "", fmt.Errorf("failed to initialize mDNS resolver: %w", err)
	}

	entries := make(chan *zeroconf.ServiceEntry)
	browseCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	if err := resolver.Browse(browseCtx, service, Domain, entries); err != nil {
		return "", fmt.Errorf("failed to browse for mDNS services: %w", err)
	}

	for {
		select {
		case entry, ok := <-entries:
			if !ok {
				return "", ErrNotFound
			}
			if u, ok := EntryURL(entry); ok {
				return u, nil
			}
		case <-browseCtx.Done():
			return "", ErrNotFound
		}
	}
}

// EntryURL строит URL из найденной записи; IPv4 предпочтительнее IPv6
func EntryURL(entry *zeroconf.ServiceEntry) (string, bool) {
	if entry == nil || entry.Port == 0 {
		return "", false
	}

	var host string
	switch {
	case len(entry.AddrIPv4) > 0:
		host = entry.AddrIPv4[0].String()
	case len(entry.AddrIPv6) > 0:
		host = entry.AddrIPv6[0].String()
	default:
		return "", false
	}

	return "http://" + net.JoinHostPort(host, strconv.Itoa(entry.Port)), true
}
