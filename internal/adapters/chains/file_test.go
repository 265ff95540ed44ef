package chains

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/safevanity/internal/domain"
)

const customDeployment = `
[deployments.custom]
proxy_factory = "0x1111111111111111111111111111111111111111"
proxy_init_code = "0x6080"
safe = "0x2222222222222222222222222222222222222222"
safe_l2 = "0x3333333333333333333333333333333333333333"
`

func TestLoadFile(t *testing.T) {
	chains, err := LoadFile(writeFile(t, customDeployment+`
safe_to_l2_setup = "0x4444444444444444444444444444444444444444"
fallback_handler = "0x5555555555555555555555555555555555555555"

[[chains]]
id = 1337
name = "local"
deployment = "custom"
`))
	require.NoError(t, err)
	require.Len(t, chains, 1)

	d := chains[0].Deployment
	assert.Equal(t, "0x4444444444444444444444444444444444444444", d.SafeToL2Setup.String())
	assert.Equal(t, "0x5555555555555555555555555555555555555555", d.FallbackHandler.String())
	assert.Nil(t, chains[0].Explorer)
}

func TestLoadFileErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "unknown key",
			content: customDeployment + "proxy = \"0x01\"\n",
			wantErr: domain.ErrInvalidDeployment,
		},
		{
			name: "missing init code",
			content: `
[deployments.custom]
proxy_factory = "0x1111111111111111111111111111111111111111"
safe = "0x2222222222222222222222222222222222222222"
safe_l2 = "0x3333333333333333333333333333333333333333"
`,
			wantErr: domain.ErrInvalidDeployment,
		},
		{
			name: "zero factory",
			content: `
[deployments.custom]
proxy_factory = "0x0000000000000000000000000000000000000000"
proxy_init_code = "0x6080"
safe = "0x2222222222222222222222222222222222222222"
safe_l2 = "0x3333333333333333333333333333333333333333"
`,
			wantErr: domain.ErrInvalidDeployment,
		},
		{
			name:    "unknown deployment",
			content: "[[chains]]\nid = 1337\nname = \"local\"\ndeployment = \"2.0.0\"\n",
			wantErr: domain.ErrInvalidDeployment,
		},
		{
			name:    "unknown singleton",
			content: "[[chains]]\nid = 1337\nname = \"local\"\ndeployment = \"1.4.1\"\nsingleton = \"SafeL3\"\n",
			wantErr: domain.ErrInvalidDeployment,
		},
		{
			name:    "missing id",
			content: "[[chains]]\nname = \"local\"\ndeployment = \"1.4.1\"\n",
			wantErr: domain.ErrInvalidDeployment,
		},
		{
			name:    "invalid address",
			content: "[deployments.custom]\nproxy_factory = \"0x1234\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadFile(writeFile(t, tt.content))
			require.Error(t, err)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
