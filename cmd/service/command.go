package service

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/ChungNYCU/jtcg-assignment/app/core"
	v1 "github.com/ChungNYCU/jtcg-assignment/app/logic/v1"
)

type Options struct {
	ConfigPath string
	Reset      bool
	Replay     bool
}

func (o *Options) AddFlags(flagSet *pflag.FlagSet) {
	flagSet.StringVarP(&o.ConfigPath, "config", "c", "", "init api by given config")
}

func NewCommand() *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "service",
		Short: "jtcg shop customer service api",
		RunE: func(cmd *cobra.Command, args []string) error {
			return Run(opts)
		},
	}
	opts.AddFlags(cmd.Flags())
	return cmd
}

func Run(opts *Options) error {
	app := core.MustSetupCore(core.MustLoadBaseConfig(opts.ConfigPath))

	// 集合為空時啟動灌入，已有資料則跳過
	if err := v1.NewRetrievalLogic(context.Background(), app).Populate(); err != nil {
		return err
	}

	serve(app)
	return nil
}

// NewSetupCommand 建表並灌入檢索資料，--reset 時先清空集合重灌。
func NewSetupCommand() *cobra.Command {
	opts := &Options{}
	cmd := &cobra.Command{
		Use:   "setup",
		Short: "install database tables and populate retrieval collections",
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunSetup(opts)
		},
	}
	opts.AddFlags(cmd.Flags())
	cmd.Flags().BoolVar(&opts.Reset, "reset", false, "clear retrieval collections before populating")
	return cmd
}

func RunSetup(opts *Options) error {
	app := core.MustSetupCore(core.MustLoadBaseConfig(opts.ConfigPath))

	if err := app.Store().Install(); err != nil {
		return err
	}

	retrieval := v1.NewRetrievalLogic(context.Background(), app)
	if opts.Reset {
		if err := retrieval.Reset(); err != nil {
			return err
		}
	}
	return retrieval.Populate()
}
