package conf

import (
	"fmt"
	"github.com/jeremywohl/flatten"
	"github.com/joho/godotenv"
	"github.com/soffa-io/salesforce-gateway/h"
	"github.com/soffa-io/salesforce-gateway/log"
	"os"
	"strings"
)

var PrometheusEnabled = true

type Manager struct {
	env        string
	vaultUrl   string
	vaultToken string
	vaultData  map[string]interface{}
	loaded     bool
}

func New(env string) *Manager {
	m := &Manager{env: strings.ToLower(env)}
	m.Load()
	return m
}

// UseDefault builds a manager that resolves the vault location
// from VAULT_URL / VAULT_ADDR when one is set.
func UseDefault(env string) *Manager {
	m := &Manager{env: strings.ToLower(env), vaultUrl: "auto"}
	m.Load()
	return m
}

func (m *Manager) Env() string {
	return m.env
}

func (m *Manager) IsProdEnv() bool {
	return "prod" == m.env
}

func (m *Manager) IsTestEnv() bool {
	return "test" == m.env
}

func (m *Manager) Load() {
	if m.loaded {
		return
	}

	filenames := []string{fmt.Sprintf(".env.%s", m.env), ".env"}
	for _, f := range filenames {
		if err := godotenv.Load(f); err == nil {
			log.Infof("%s file loaded", f)
		}
	}

	if "auto" == m.vaultUrl {
		m.vaultUrl = h.AnyStr(os.Getenv("VAULT_URL"), os.Getenv("VAULT_ADDR"))
		m.vaultToken = os.Getenv("VAULT_TOKEN")
	}

	log.SetLevel(h.Getenv("LOG_LEVEL", "INFO"))

	if h.IsStrEmpty(m.vaultUrl) {
		log.Debug("no vault url configured, skipping")
	} else {
		log.Infof("loading config from vault: %s", m.vaultUrl)
		data, err := h.ReadVaultSecret(m.vaultUrl, m.vaultToken)
		if err != nil {
			log.Fatalf("error starting service, failed to read secrets from vault.\n%v", err)
		}
		flat, err := flatten.Flatten(data, "", flatten.DotStyle)
		log.FatalIf(err)
		m.vaultData = flat
	}

	m.loaded = true
	log.Debug("config manager loaded")
}

func (m *Manager) Require(paths ...string) string {
	value := m.Get(paths...)
	if h.IsStrEmpty(value) {
		log.Fatalf("[config] unable to locate one of: %s", strings.Join(paths, ","))
	}
	return value
}

func (m *Manager) Get(paths ...string) string {
	for _, p := range paths {
		var value = ""
		if m.vaultData != nil {
			if res, ok := m.vaultData[p]; ok {
				value = fmt.Sprintf("%s", res)
			}
		}
		if h.IsStrEmpty(value) {
			value = os.Getenv(p)
		}
		if !h.IsStrEmpty(value) {
			return value
		}
	}
	return ""
}
