package configreview

import (
	"fmt"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/miekg/dns"
	dhcpmodel "isc.org/dhcp2ipam/datamodel/dhcp"
	storkutil "isc.org/dhcp2ipam/util"
)

// Maximum number of the offending entities listed in a report.
const maxListedEntities = 10

// Accumulates the offending entities found by a checker and builds the
// report.
type findings struct {
	ctx          *ReviewContext
	descriptions []string
	scopes       map[string]*dhcpmodel.Scope
	scopeOrder   []string
	reservations map[string]*dhcpmodel.Reservation
	resOrder     []string
}

func newFindings(ctx *ReviewContext) *findings {
	return &findings{
		ctx:          ctx,
		scopes:       make(map[string]*dhcpmodel.Scope),
		reservations: make(map[string]*dhcpmodel.Reservation),
	}
}

func (f *findings) add(description string, scope *dhcpmodel.Scope, reservation *dhcpmodel.Reservation) {
	f.descriptions = append(f.descriptions, description)
	if scope != nil && scope.ID != "" {
		if _, ok := f.scopes[scope.ID]; !ok {
			f.scopes[scope.ID] = scope
			f.scopeOrder = append(f.scopeOrder, scope.ID)
		}
	}
	if reservation != nil && reservation.IPAddress != "" {
		if _, ok := f.reservations[reservation.IPAddress]; !ok {
			f.reservations[reservation.IPAddress] = reservation
			f.resOrder = append(f.resOrder, reservation.IPAddress)
		}
	}
}

// Creates the report or returns nil if nothing was found.
func (f *findings) report(summary string) (*Report, error) {
	if len(f.descriptions) == 0 {
		return nil, nil
	}
	listed := f.descriptions
	suffix := ""
	if len(listed) > maxListedEntities {
		suffix = fmt.Sprintf(" and %d more", len(listed)-maxListedEntities)
		listed = listed[:maxListedEntities]
	}
	content := fmt.Sprintf("%s (%d): %s%s.", summary, len(f.descriptions), strings.Join(listed, "; "), suffix)
	report := NewReport(f.ctx, content)
	for _, id := range f.scopeOrder {
		report = report.referencingScope(f.scopes[id])
	}
	for _, ip := range f.resOrder {
		report = report.referencingReservation(f.reservations[ip])
	}
	return report.create()
}

// Iterates over the non-nil scopes of the reviewed server.
func forEachScope(ctx *ReviewContext, fn func(scope *dhcpmodel.Scope)) {
	for _, scope := range ctx.subjectServer.Scopes {
		if scope != nil {
			fn(scope)
		}
	}
}

// Iterates over the non-nil reservations of the reviewed server.
func forEachReservation(ctx *ReviewContext, fn func(scope *dhcpmodel.Scope, reservation *dhcpmodel.Reservation)) {
	forEachScope(ctx, func(scope *dhcpmodel.Scope) {
		for _, reservation := range scope.Reservations {
			if reservation != nil {
				fn(scope, reservation)
			}
		}
	})
}

// The checker verifying that the reservation hardware addresses can be
// converted to valid MAC addresses.
func hwAddressFormat(ctx *ReviewContext) (*Report, error) {
	found := newFindings(ctx)
	forEachReservation(ctx, func(scope *dhcpmodel.Scope, reservation *dhcpmodel.Reservation) {
		mac := strings.ReplaceAll(strings.TrimSpace(reservation.ClientID), "-", ":")
		if !govalidator.IsMAC(mac) {
			found.add(fmt.Sprintf("reservation %s has hardware address %q", reservation.IPAddress, reservation.ClientID), scope, reservation)
		}
	})
	return found.report("Some reservations have hardware addresses that are not valid MAC addresses; the target system may reject the fixed addresses")
}

// The checker verifying that each exclusion range is ordered and lies
// within the scope range.
func exclusionsInRange(ctx *ReviewContext) (*Report, error) {
	found := newFindings(ctx)
	forEachScope(ctx, func(scope *dhcpmodel.Scope) {
		for _, exclusion := range scope.Range.Exclusions {
			if !storkutil.IsRangeInRange(exclusion.Start, exclusion.End, scope.Range.Start, scope.Range.End) {
				found.add(fmt.Sprintf("exclusion %s-%s in scope %s is outside of the range %s-%s",
					exclusion.Start, exclusion.End, scope.ID, scope.Range.Start, scope.Range.End), scope, nil)
			}
		}
	})
	return found.report("Some exclusion ranges are invalid or lie outside of their scope ranges")
}

// The checker verifying that the reserved addresses belong to their scope
// subnets.
func reservationsInSubnet(ctx *ReviewContext) (*Report, error) {
	found := newFindings(ctx)
	forEachScope(ctx, func(scope *dhcpmodel.Scope) {
		if len(scope.Reservations) == 0 {
			return
		}
		subnet, err := storkutil.ParseIPv4Subnet(scope.ID, scope.SubnetMask)
		if err != nil {
			found.add(fmt.Sprintf("scope %s has invalid subnet mask %q", scope.ID, scope.SubnetMask), scope, nil)
			return
		}
		for _, reservation := range scope.Reservations {
			if reservation == nil {
				continue
			}
			if !storkutil.IsAddressInSubnet(reservation.IPAddress, subnet) {
				found.add(fmt.Sprintf("reservation %s is outside of the subnet %s", reservation.IPAddress, subnet), scope, reservation)
			}
		}
	})
	return found.report("Some reservations do not belong to their scope subnets")
}

// Runs the check function for each value of the option at all levels of
// the hierarchy.
func checkOptionValues(ctx *ReviewContext, optionID int, isValid func(string) bool, describe func(level, value string) string) *findings {
	found := newFindings(ctx)
	checkLevel := func(owner dhcpmodel.DHCPOptionAccessor, level string, scope *dhcpmodel.Scope, reservation *dhcpmodel.Reservation) {
		option, ok := owner.GetDHCPOptions().Get(optionID)
		if !ok {
			return
		}
		for _, value := range option.Value.GetValues() {
			if !isValid(value) {
				found.add(describe(level, value), scope, reservation)
			}
		}
	}
	checkLevel(ctx.subjectServer, "server", nil, nil)
	forEachScope(ctx, func(scope *dhcpmodel.Scope) {
		checkLevel(scope, fmt.Sprintf("scope %s", scope.ID), scope, nil)
		for _, reservation := range scope.Reservations {
			if reservation != nil {
				checkLevel(reservation, fmt.Sprintf("reservation %s", reservation.IPAddress), scope, reservation)
			}
		}
	})
	return found
}

// The checker verifying that the domain names are valid DNS names.
func domainNameFormat(ctx *ReviewContext) (*Report, error) {
	found := checkOptionValues(ctx, dhcpmodel.OptionDomainName,
		func(value string) bool {
			value = strings.TrimSpace(value)
			if value == "" {
				return false
			}
			_, ok := dns.IsDomainName(value)
			return ok
		},
		func(level, value string) string {
			return fmt.Sprintf("%s has domain name %q", level, value)
		})
	return found.report("Some domain names (option 15) are not valid DNS names")
}

// The checker verifying that the routers are IPv4 addresses.
func routerAddressFormat(ctx *ReviewContext) (*Report, error) {
	found := checkOptionValues(ctx, dhcpmodel.OptionRouter,
		govalidator.IsIPv4,
		func(level, value string) string {
			return fmt.Sprintf("%s has router %q", level, value)
		})
	return found.report("Some routers (option 3) are not valid IPv4 addresses")
}

// The checker verifying that the DNS servers are IPv4 addresses.
func dnsServerAddressFormat(ctx *ReviewContext) (*Report, error) {
	found := checkOptionValues(ctx, dhcpmodel.OptionDomainNameServer,
		govalidator.IsIPv4,
		func(level, value string) string {
			return fmt.Sprintf("%s has DNS server %q", level, value)
		})
	return found.report("Some DNS servers (option 6) are not valid IPv4 addresses")
}
