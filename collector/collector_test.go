package collector

import (
	"context"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
	dhcpmodel "isc.org/dhcp2ipam/datamodel/dhcp"
	dhcptest "isc.org/dhcp2ipam/datamodel/dhcp/test"
)

//go:generate mockgen -package=collector -destination=sourcemock_test.go isc.org/dhcp2ipam/collector Source

const testServer = "dhcp1.example.org"

// Sets up the expectations of a server with a single scope and a single
// reservation. The calls succeed unless overridden before.
func expectSingleScope(mock *MockSource) {
	mock.EXPECT().Ping(gomock.Any(), testServer).Return(nil).AnyTimes()
	mock.EXPECT().GetServerOptions(gomock.Any(), testServer).Return(dhcpmodel.NewOptions(
		dhcptest.NewScalarOption(dhcpmodel.OptionDomainName, "example.org"),
	), nil).AnyTimes()
	mock.EXPECT().GetScopes(gomock.Any(), testServer).Return([]*dhcpmodel.Scope{{
		ID:         "192.0.2.0",
		SubnetMask: "255.255.255.0",
		Name:       "Engineering",
		Range:      dhcpmodel.AddressRange{Start: "192.0.2.10", End: "192.0.2.200"},
	}}, nil).AnyTimes()
	mock.EXPECT().GetExclusionRanges(gomock.Any(), testServer, "192.0.2.0").Return([]dhcpmodel.ExclusionRange{
		{Start: "192.0.2.10", End: "192.0.2.20"},
	}, nil).AnyTimes()
	mock.EXPECT().GetScopeOptions(gomock.Any(), testServer, "192.0.2.0").Return(dhcpmodel.NewOptions(
		dhcptest.NewListOption(dhcpmodel.OptionRouter, "192.0.2.1"),
	), nil).AnyTimes()
	mock.EXPECT().GetDNSSettings(gomock.Any(), testServer, "192.0.2.0").Return(&dhcpmodel.DNSSettings{
		DynamicUpdates:           dhcpmodel.DNSUpdateModeAlways,
		DeleteDNSRROnLeaseExpiry: true,
	}, nil).AnyTimes()
	mock.EXPECT().GetReservations(gomock.Any(), testServer, "192.0.2.0").Return([]*dhcpmodel.Reservation{{
		IPAddress: "192.0.2.50",
		ClientID:  "00-11-22-33-44-55",
	}}, nil).AnyTimes()
	mock.EXPECT().GetReservationOptions(gomock.Any(), testServer, "192.0.2.0", "192.0.2.50").Return(dhcpmodel.NewOptions(
		dhcptest.NewListOption(dhcpmodel.OptionDomainNameServer, "192.0.2.53"),
	), nil).AnyTimes()
}

// Test that the complete hierarchy is collected.
func TestCollect(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	mock := NewMockSource(ctrl)
	expectSingleScope(mock)

	// Act
	result, err := Collect(context.Background(), mock, testServer)

	// Assert
	require.NoError(t, err)
	require.Empty(t, result.Errors)
	server := result.Server
	require.Equal(t, testServer, server.Name)
	require.True(t, server.Options.Has(dhcpmodel.OptionDomainName))
	require.Len(t, server.Scopes, 1)
	scope := server.Scopes[0]
	require.Len(t, scope.Range.Exclusions, 1)
	require.True(t, scope.Options.Has(dhcpmodel.OptionRouter))
	require.Equal(t, dhcpmodel.DNSUpdateModeAlways, scope.DNSSettings.DynamicUpdates)
	require.Len(t, scope.Reservations, 1)
	require.Equal(t, "192.0.2.0", scope.Reservations[0].ScopeID)
	require.True(t, scope.Reservations[0].Options.Has(dhcpmodel.OptionDomainNameServer))
}

// Test that the unreachable server aborts the collection before any
// collection is fetched.
func TestCollectUnreachable(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockSource(ctrl)
	mock.EXPECT().Ping(gomock.Any(), testServer).Return(errors.New("connection refused"))

	result, err := Collect(context.Background(), mock, testServer)

	require.ErrorIs(t, err, ErrServerUnreachable)
	require.ErrorContains(t, err, "connection refused")
	require.Nil(t, result)
}

// Test that the collection of a reachable server does not ping it again.
func TestCollectReachable(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	mock := NewMockSource(ctrl)
	mock.EXPECT().Ping(gomock.Any(), gomock.Any()).Times(0)
	mock.EXPECT().GetServerOptions(gomock.Any(), testServer).Return(nil, nil)
	mock.EXPECT().GetScopes(gomock.Any(), testServer).Return(nil, nil)

	// Act
	result, err := CollectReachable(context.Background(), mock, testServer)

	// Assert
	require.NoError(t, err)
	require.Empty(t, result.Errors)
	require.Empty(t, result.Server.Scopes)
}

// Test that the connectivity check wraps the ping error.
func TestCheckConnectivity(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockSource(ctrl)
	mock.EXPECT().Ping(gomock.Any(), "dhcp1").Return(nil)
	mock.EXPECT().Ping(gomock.Any(), "dhcp2").Return(errors.New("timeout"))

	require.NoError(t, CheckConnectivity(context.Background(), mock, "dhcp1"))
	err := CheckConnectivity(context.Background(), mock, "dhcp2")
	require.ErrorIs(t, err, ErrServerUnreachable)
	require.ErrorContains(t, err, "dhcp2: timeout")
}

// Test that a failure to fetch the scopes yields a server without scopes.
func TestCollectScopesFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockSource(ctrl)
	mock.EXPECT().Ping(gomock.Any(), testServer).Return(nil)
	mock.EXPECT().GetServerOptions(gomock.Any(), testServer).Return(nil, nil)
	mock.EXPECT().GetScopes(gomock.Any(), testServer).Return(nil, errors.New("access denied"))

	result, err := Collect(context.Background(), mock, testServer)

	require.NoError(t, err)
	require.Empty(t, result.Server.Scopes)
	require.Len(t, result.Errors, 1)
	require.Equal(t, CollectionScopes, result.Errors[0].Collection)
	require.Equal(t, testServer, result.Errors[0].Server)
	require.Empty(t, result.Errors[0].Scope)
}

// Test that the failures of the per-scope collections are recorded and
// the collections are treated as empty.
func TestCollectScopeCollectionsFailure(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	mock := NewMockSource(ctrl)
	mock.EXPECT().GetServerOptions(gomock.Any(), testServer).Return(nil, errors.New("timeout"))
	mock.EXPECT().GetExclusionRanges(gomock.Any(), testServer, "192.0.2.0").Return(nil, errors.New("timeout"))
	mock.EXPECT().GetScopeOptions(gomock.Any(), testServer, "192.0.2.0").Return(nil, errors.New("timeout"))
	mock.EXPECT().GetDNSSettings(gomock.Any(), testServer, "192.0.2.0").Return(nil, errors.New("timeout"))
	mock.EXPECT().GetReservationOptions(gomock.Any(), testServer, "192.0.2.0", "192.0.2.50").Return(nil, errors.New("timeout"))
	expectSingleScope(mock)

	// Act
	result, err := Collect(context.Background(), mock, testServer)

	// Assert
	require.NoError(t, err)
	require.Len(t, result.Errors, 5)
	collections := []string{}
	for _, retrievalErr := range result.Errors {
		collections = append(collections, retrievalErr.Collection)
	}
	require.Equal(t, []string{
		CollectionServerOptions,
		CollectionExclusionRanges,
		CollectionScopeOptions,
		CollectionDNSSettings,
		CollectionReservationOptions,
	}, collections)
	require.Equal(t, "192.0.2.50", result.Errors[4].Reservation)

	server := result.Server
	require.Nil(t, server.Options)
	scope := server.Scopes[0]
	require.Empty(t, scope.Range.Exclusions)
	require.Nil(t, scope.Options)
	require.Equal(t, dhcpmodel.DNSUpdateModeDisabled, scope.DNSSettings.DynamicUpdates)
	require.False(t, scope.DNSSettings.DeleteDNSRROnLeaseExpiry)
	require.Len(t, scope.Reservations, 1)
	require.Nil(t, scope.Reservations[0].Options)
}

// Test that a failure to fetch the reservations yields a scope without
// reservations.
func TestCollectReservationsFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockSource(ctrl)
	mock.EXPECT().GetReservations(gomock.Any(), testServer, "192.0.2.0").Return(nil, errors.New("timeout"))
	expectSingleScope(mock)

	result, err := Collect(context.Background(), mock, testServer)

	require.NoError(t, err)
	require.Len(t, result.Errors, 1)
	require.Equal(t, CollectionReservations, result.Errors[0].Collection)
	require.Equal(t, "192.0.2.0", result.Errors[0].Scope)
	require.Empty(t, result.Server.Scopes[0].Reservations)
}

// Test that the cancelled context aborts the collection.
func TestCollectCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	mock := NewMockSource(ctrl)
	expectSingleScope(mock)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := Collect(ctx, mock, testServer)

	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, result)
}

// Test the retrieval error message and serialization.
func TestRetrievalError(t *testing.T) {
	cause := errors.New("timeout")
	err := NewRetrievalError(CollectionReservationOptions, testServer, "192.0.2.0", "192.0.2.50", cause)

	require.Equal(t, "failed to fetch reservation_options for server dhcp1.example.org, scope 192.0.2.0, reservation 192.0.2.50: timeout", err.Error())
	require.ErrorIs(t, err, cause)

	serial, marshalErr := err.MarshalJSON()
	require.NoError(t, marshalErr)
	require.JSONEq(t, `{
		"collection": "reservation_options",
		"server": "dhcp1.example.org",
		"scope": "192.0.2.0",
		"reservation": "192.0.2.50",
		"error": "timeout"
	}`, string(serial))

	err = NewRetrievalError(CollectionScopes, testServer, "", "", nil)
	require.Equal(t, "failed to fetch scopes for server dhcp1.example.org", err.Error())
}
