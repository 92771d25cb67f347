package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PAYSTAND_BASE_URL", "")
	t.Setenv("PAYSTAND_TIMEOUT", "")
	t.Setenv("PORT", "")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 8080, cfg.Port)
	require.Equal(t, "https://api.paystand.co/v3", cfg.PaystandBaseURL)
	require.Equal(t, "X-CUSTOMER-ID", cfg.PaystandTenantHeader)
	require.Equal(t, 15*time.Second, cfg.PaystandTimeout)
	require.Equal(t, "customers", cfg.CustomersTable)
	require.Equal(t, "payers", cfg.PayersTable)
	require.Equal(t, "outbox", cfg.OutboxTable)
	require.Equal(t, "@every 1m", cfg.OutboxSchedule)
}

func TestLoad_FromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("PAYSTAND_BASE_URL", "https://api.paystand.biz/v3/")
	t.Setenv("PAYSTAND_CUSTOMER_ID", "cus_tenant")
	t.Setenv("PAYSTAND_TIMEOUT", "5s")
	t.Setenv("PAYERS_TABLE", "payers-test")
	t.Setenv("OUTBOX_BATCH_SIZE", "7")

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 9090, cfg.Port)
	require.Equal(t, "https://api.paystand.biz/v3", cfg.PaystandBaseURL)
	require.Equal(t, "cus_tenant", cfg.PaystandCustomerID)
	require.Equal(t, 5*time.Second, cfg.PaystandTimeout)
	require.Equal(t, "payers-test", cfg.PayersTable)
	require.Equal(t, 7, cfg.OutboxBatchSize)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{Port: 8080, PaystandBaseURL: "https://api.paystand.co/v3", PaystandTimeout: time.Second}
	require.NoError(t, valid.Validate())

	noURL := valid
	noURL.PaystandBaseURL = ""
	require.Error(t, noURL.Validate())

	noTimeout := valid
	noTimeout.PaystandTimeout = 0
	require.Error(t, noTimeout.Validate())

	badPort := valid
	badPort.Port = 70000
	require.Error(t, badPort.Validate())
}
