package h

import (
	"fmt"
	"github.com/hashicorp/vault/api"
	"net/url"
)

type VaultInterceptor = func() Map

var vaultInterceptor VaultInterceptor

// SetVaultInterceptor installs a fake secret source, for tests only.
func SetVaultInterceptor(fn VaultInterceptor) {
	vaultInterceptor = fn
}

func ReadVaultSecret(uri string, token string) (map[string]interface{}, error) {
	if vaultInterceptor != nil {
		return vaultInterceptor(), nil
	}
	u, err := url.Parse(uri)
	if err != nil {
		return nil, err
	}
	config := &api.Config{
		Address: fmt.Sprintf("%s://%s", u.Scheme, u.Host),
	}
	client, err := api.NewClient(config)
	if err != nil {
		return nil, err
	}
	client.SetToken(token)
	secret, err := client.Logical().Read(fmt.Sprintf("secret/data%s", u.Path))
	if err != nil {
		return nil, err
	}
	if secret == nil {
		return nil, fmt.Errorf("unable to locate %s", u.Path)
	}
	return secret.Data["data"].(map[string]interface{}), nil
}
