package appconfig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDatasetLocationDecode(t *testing.T) {
	var l DatasetLocation

	require.NoError(t, l.Decode("EA.csv"))
	assert.Equal(t, SchemeFile, l.Scheme)
	assert.Equal(t, "EA.csv", l.Path)

	require.NoError(t, l.Decode("file:///srv/data/EA.csv"))
	assert.Equal(t, SchemeFile, l.Scheme)
	assert.Equal(t, "/srv/data/EA.csv", l.Path)

	require.NoError(t, l.Decode("s3://hr-exports/2023/EA.csv"))
	assert.Equal(t, SchemeS3, l.Scheme)
	assert.Equal(t, "hr-exports", l.Bucket)
	assert.Equal(t, "2023/EA.csv", l.Key)
	assert.Equal(t, "s3://hr-exports/2023/EA.csv", l.String())

	assert.Error(t, l.Decode("s3://hr-exports"))
	assert.Error(t, l.Decode("ftp://host/EA.csv"))
	assert.Error(t, l.Decode(""))
}

func TestDelimiterDecode(t *testing.T) {
	var d Delimiter

	require.NoError(t, d.Decode(";"))
	assert.Equal(t, Delimiter(';'), d)

	require.NoError(t, d.Decode("tab"))
	assert.Equal(t, Delimiter('\t'), d)

	assert.Error(t, d.Decode(",,"))
}
