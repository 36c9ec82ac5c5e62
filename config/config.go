// Package config loads the genesis configuration: the authority owner set,
// destination wallets, launch schedule and initial DEX registry.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"veralux/core/types"
	"veralux/native/multisig"
	"veralux/native/params"
)

// Genesis is the on-disk bootstrap configuration. Keys are 64-character hex.
type Genesis struct {
	DataDir         string `toml:"DataDir"`
	Environment     string `toml:"Environment"`
	LaunchTimestamp int64  `toml:"LaunchTimestamp"`

	MultisigOwners    []string `toml:"MultisigOwners"`
	MultisigThreshold uint8    `toml:"MultisigThreshold"`

	CharityWallet   string `toml:"CharityWallet"`
	TeamWallet      string `toml:"TeamWallet"`
	LiquidityPool   string `toml:"LiquidityPool"`
	PresaleReceiver string `toml:"PresaleReceiver"`

	DexPrograms []string `toml:"DexPrograms"`
}

// Load reads the configuration from path. A missing file yields defaults
// with the launch anchored at load time; unknown keys are rejected.
func Load(path string) (*Genesis, error) {
	cfg := &Genesis{}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg.applyDefaults()
		return cfg, nil
	}

	meta, err := toml.DecodeFile(path, cfg)
	if err != nil {
		return nil, err
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("config: unknown keys in %s: %s", path, strings.Join(keys, ", "))
	}

	cfg.applyDefaults()
	return cfg, nil
}

func (g *Genesis) applyDefaults() {
	if strings.TrimSpace(g.DataDir) == "" {
		g.DataDir = "./data"
	}
	if strings.TrimSpace(g.Environment) == "" {
		g.Environment = "local"
	}
	if g.LaunchTimestamp == 0 {
		g.LaunchTimestamp = time.Now().Unix()
	}
}

// Multisig decodes and validates the configured authority. An empty owner
// list yields the zero value, leaving the ledger in bootstrap mode.
func (g *Genesis) Multisig() (multisig.Multisig, error) {
	if len(g.MultisigOwners) == 0 {
		return multisig.Multisig{}, nil
	}
	ms := multisig.Multisig{Threshold: g.MultisigThreshold}
	for _, raw := range g.MultisigOwners {
		owner, err := types.KeyFromHex(strings.TrimSpace(raw))
		if err != nil {
			return multisig.Multisig{}, fmt.Errorf("config: multisig owner: %w", err)
		}
		ms.Owners = append(ms.Owners, owner)
	}
	if err := ms.Validate(); err != nil {
		return multisig.Multisig{}, err
	}
	return ms, nil
}

// Policy builds the genesis policy from the configuration.
func (g *Genesis) Policy() (params.Policy, error) {
	policy := params.DefaultPolicy(time.Unix(g.LaunchTimestamp, 0))
	var err error
	if policy.CharityWallet, err = keyOrZero(g.CharityWallet); err != nil {
		return params.Policy{}, fmt.Errorf("config: charity wallet: %w", err)
	}
	if policy.TeamWallet, err = keyOrZero(g.TeamWallet); err != nil {
		return params.Policy{}, fmt.Errorf("config: team wallet: %w", err)
	}
	if policy.LiquidityPool, err = keyOrZero(g.LiquidityPool); err != nil {
		return params.Policy{}, fmt.Errorf("config: liquidity pool: %w", err)
	}
	if policy.PresaleReceiver, err = keyOrZero(g.PresaleReceiver); err != nil {
		return params.Policy{}, fmt.Errorf("config: presale receiver: %w", err)
	}
	if len(g.DexPrograms) > params.MaxDexPrograms {
		return params.Policy{}, params.ErrTooManyDexPrograms
	}
	for _, raw := range g.DexPrograms {
		dex, err := types.KeyFromHex(strings.TrimSpace(raw))
		if err != nil {
			return params.Policy{}, fmt.Errorf("config: dex program: %w", err)
		}
		policy.DexPrograms = append(policy.DexPrograms, dex)
	}
	return policy, nil
}

func keyOrZero(raw string) (types.PublicKey, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return types.ZeroKey, nil
	}
	return types.KeyFromHex(raw)
}
