package main

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/x-xyz/ensapi/base/ctx"
	"github.com/x-xyz/ensapi/base/multicoin"
	"github.com/x-xyz/ensapi/domain"
	ensdomain "github.com/x-xyz/ensapi/domain/ens"
	chainsvc "github.com/x-xyz/ensapi/service/chain"
	"github.com/x-xyz/ensapi/service/ens"
	ens_usecase "github.com/x-xyz/ensapi/stores/ens/usecase"
)

const defaultTimeout = 30 * time.Second

var (
	configFile string
	network    string

	usecase ensdomain.Usecase
)

var rootCmd = &cobra.Command{
	Use:   "ensctl",
	Short: "Resolve ENS names across chains",
	Long: `ensctl resolves ENS names with the same rules as the api server.

Queries can target the native address (vitalik.eth), another chain
(vitalik.eth:btc or vitalik.btc) or a text record (vitalik.eth:twitter
or vitalik.twitter). Results are printed as JSON, null when nothing is set.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return setup()
	},
}

var resolveCmd = &cobra.Command{
	Use:   "resolve [name]",
	Short: "Resolve a name into an address or a text record",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, cancel := ctx.WithTimeout(ctx.Background(), defaultTimeout)
		defer cancel()

		res, err := usecase.Resolve(c, args[0], domain.Network(network))
		if err != nil {
			return err
		}
		return printJSON(res)
	},
}

var infoCmd = &cobra.Command{
	Use:   "info [name]",
	Short: "Show resolver, owner and resolved value of a name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, cancel := ctx.WithTimeout(ctx.Background(), defaultTimeout)
		defer cancel()

		res, err := usecase.DomainInfo(c, args[0], domain.Network(network))
		if err != nil {
			return err
		}
		return printJSON(res)
	},
}

var reverseCmd = &cobra.Command{
	Use:   "reverse [address]",
	Short: "Show the primary name of an address",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, cancel := ctx.WithTimeout(ctx.Background(), defaultTimeout)
		defer cancel()

		res, err := usecase.ReverseResolve(c, domain.Address(args[0]), domain.Network(network))
		if err != nil {
			return err
		}
		return printJSON(res)
	},
}

type chainInfo struct {
	Code     string `json:"code"`
	CoinType uint64 `json:"coinType"`
	Encoded  bool   `json:"encoded"`
}

var chainsCmd = &cobra.Command{
	Use:   "chains",
	Short: "List chain codes usable as targets",
	Long: `List every chain code with its ENS coin type. Chains that are not
encoded natively are returned as <code>_0x<hex>.`,
	Args: cobra.NoArgs,
	// no rpc needed
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		codes := ensdomain.ChainCodes()
		res := make([]chainInfo, 0, len(codes))
		for _, code := range codes {
			res = append(res, chainInfo{
				Code:     code,
				CoinType: ensdomain.CoinType(code),
				Encoded:  multicoin.HasDecoder(code),
			})
		}
		return printJSON(res)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "infra/configs/config.yaml", "path of the config file")
	rootCmd.PersistentFlags().StringVarP(&network, "network", "n", domain.DefaultNetwork.String(), "network to query")

	rootCmd.AddCommand(resolveCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(reverseCmd)
	rootCmd.AddCommand(chainsCmd)
}

func setup() error {
	viper.SetConfigType("yaml")
	viper.SetConfigFile(configFile)
	if err := viper.ReadInConfig(); err != nil {
		return err
	}

	networks := viper.Sub("networks")
	if networks == nil {
		return fmt.Errorf("no networks in %s", configFile)
	}
	rpcUrl := networks.GetString(fmt.Sprintf("%s.rpcUrl", network))
	if rpcUrl == "" {
		return fmt.Errorf("network %q: %w", network, domain.ErrUnsupportedNetwork)
	}
	registry := domain.Address(networks.GetString(fmt.Sprintf("%s.registry", network))).ToLower()

	// only dial the network being queried
	chainService, err := chainsvc.NewClient(ctx.Background(), &chainsvc.ClientCfg{
		RpcUrls: map[domain.Network]string{domain.Network(network): rpcUrl},
	})
	if err != nil {
		return err
	}
	usecase = ens_usecase.New(ens.New(&ens.Cfg{
		Chain:         chainService,
		RegistryAddrs: map[domain.Network]domain.Address{domain.Network(network): registry},
	}))
	return nil
}

func printJSON(v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(b))
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
