package domquery

import (
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigureTracing(t *testing.T) {
	conf := testconfig.Conf{
		"tracing.adapter":          "logrus",
		"tracelevel.root":          "Error",
		"tracelevel.domquery.dom":  "Debug",
		"tracelevel.domquery.form": "Info",
	}
	require.NoError(t, ConfigureTracing(conf))
	defer trace2go.Teardown()
	//
	assert.Equal(t, tracing.LevelDebug, tracing.Select("domquery.dom").GetTraceLevel())
	assert.Equal(t, tracing.LevelInfo, tracing.Select("domquery.form").GetTraceLevel())
	assert.Error(t, ConfigureTracing(nil))
}
