package main

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"

	"github.com/jybp/httpthrottle"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/deltagestor/sisgenfe/internal/config"
	"github.com/deltagestor/sisgenfe/internal/ports"
	"github.com/deltagestor/sisgenfe/sisgenfe"
)

// app guarda o estado compartilhado entre os subcomandos
type app struct {
	envFile string
	limit   int
	offset  int

	cfg    *config.Config
	logger zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "sisgenfe",
		Short:         "Cliente de linha de comando do webservice de NFS-e Sisgenfe",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.init(cmd.ErrOrStderr())
		},
	}

	root.PersistentFlags().StringVar(&a.envFile, "env-file", ".env", "arquivo .env opcional")
	root.PersistentFlags().IntVar(&a.limit, "limit", 0, "limite de registros (0 = padrão do endpoint)")
	root.PersistentFlags().IntVar(&a.offset, "offset", -1, "deslocamento da consulta (-1 = padrão do endpoint)")

	root.AddCommand(
		a.authCmd(),
		a.cnaesCmd(),
		a.cnaeCmd(),
		a.takerCmd(),
		a.nfsCmd(),
		a.cityCmd(),
		a.unitCmd(),
	)

	return root
}

// init carrega configurações e prepara o logger
func (a *app) init(stderr io.Writer) error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return fmt.Errorf("erro ao carregar configurações: %w", err)
	}
	a.cfg = cfg

	level := zerolog.InfoLevel
	if cfg.Debug {
		level = zerolog.DebugLevel
	}
	a.logger = zerolog.New(zerolog.ConsoleWriter{Out: stderr}).Level(level).With().Timestamp().Logger()

	return nil
}

// queryOptions converte as flags globais em opções de consulta
func (a *app) queryOptions() []sisgenfe.QueryOption {
	var opts []sisgenfe.QueryOption
	if a.limit > 0 {
		opts = append(opts, sisgenfe.WithLimit(a.limit))
	}
	if a.offset >= 0 {
		opts = append(opts, sisgenfe.WithOffset(a.offset))
	}
	return opts
}

// clientOptions monta as opções do cliente a partir da configuração
func (a *app) clientOptions() []sisgenfe.Option {
	opts := []sisgenfe.Option{
		sisgenfe.WithBaseURL(a.cfg.BaseURL),
		sisgenfe.WithDebugLogging(a.cfg.Debug),
		sisgenfe.WithLogger(a.logger),
	}
	if a.cfg.Timeout > 0 {
		opts = append(opts, sisgenfe.WithTimeout(a.cfg.Timeout))
	}

	if a.cfg.HasCertificate() {
		if a.cfg.RateLimit > 0 {
			a.logger.Warn().Msg("⚠️  Rate limit ignorado: não é compatível com certificado A1")
		}
		opts = append(opts, sisgenfe.WithCertificate(a.cfg.CertificatePath, a.cfg.CertificatePassword))
		return opts
	}

	if a.cfg.RateLimit > 0 {
		opts = append(opts, sisgenfe.WithHTTPClient(&http.Client{
			Transport: httpthrottle.Default(rate.NewLimiter(rate.Limit(a.cfg.RateLimit), 1)),
		}))
	}
	return opts
}

// token retorna o token configurado ou faz login
func (a *app) token(ctx context.Context) (string, error) {
	if a.cfg.HasToken() {
		return a.cfg.Token, nil
	}

	a.logger.Debug().Str("prestador", a.cfg.Prestador).Msg("🔐 Autenticando")
	token, err := sisgenfe.Authenticate(ctx, a.cfg.Credentials(), a.clientOptions()...)
	if err != nil {
		return "", fmt.Errorf("erro ao autenticar: %w", err)
	}
	return token, nil
}

// service cria o cliente autenticado
func (a *app) service(ctx context.Context) (ports.NFSeService, error) {
	token, err := a.token(ctx)
	if err != nil {
		return nil, err
	}

	client, err := sisgenfe.New(token, a.clientOptions()...)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar cliente: %w", err)
	}
	return client, nil
}

// run executa uma chamada e imprime o JSON retornado
func (a *app) run(cmd *cobra.Command, call func(ctx context.Context, svc ports.NFSeService) (sisgenfe.Result, error)) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	svc, err := a.service(ctx)
	if err != nil {
		return err
	}

	result, err := call(ctx, svc)
	if err != nil {
		if sisgenfe.IsUnauthorized(err) {
			a.logger.Warn().Msg("🔐 Token rejeitado, autentique novamente com `sisgenfe auth`")
		}
		return err
	}

	return printJSON(cmd.OutOrStdout(), result)
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func (a *app) authCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "auth",
		Short: "Faz login e imprime o token (SISGENFE_TOKEN)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.cfg.RequireCredentials(); err != nil {
				return err
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			token, err := sisgenfe.Authenticate(ctx, a.cfg.Credentials(), a.clientOptions()...)
			if err != nil {
				return fmt.Errorf("erro ao autenticar: %w", err)
			}
			a.logger.Info().Msg("✅ Autenticado com sucesso")
			_, err = fmt.Fprintln(cmd.OutOrStdout(), token)
			return err
		},
	}
}

func (a *app) cnaesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cnaes",
		Short: "Lista os CNAEs do prestador",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.run(cmd, func(ctx context.Context, svc ports.NFSeService) (sisgenfe.Result, error) {
				return svc.GetCnaes(ctx)
			})
		},
	}
}

func (a *app) cnaeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cnae <codigo-lei116>",
		Short: "Consulta um CNAE pelo código da LC 116",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, svc ports.NFSeService) (sisgenfe.Result, error) {
				return svc.SearchCnae(ctx, args[0], a.queryOptions()...)
			})
		},
	}
}

func (a *app) takerCmd() *cobra.Command {
	var dataFile string

	cmd := &cobra.Command{
		Use:   "tomador <documento>",
		Short: "Consulta um tomador pelo CPF/CNPJ ou cadastra com --data",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dataFile != "" {
				data, err := readData(dataFile)
				if err != nil {
					return err
				}
				return a.run(cmd, func(ctx context.Context, svc ports.NFSeService) (sisgenfe.Result, error) {
					return svc.NewTaker(ctx, data)
				})
			}
			if len(args) != 1 {
				return fmt.Errorf("informe o documento ou --data")
			}
			return a.run(cmd, func(ctx context.Context, svc ports.NFSeService) (sisgenfe.Result, error) {
				return svc.SearchTaker(ctx, args[0], a.queryOptions()...)
			})
		},
	}
	cmd.Flags().StringVar(&dataFile, "data", "", "arquivo JSON com o tomador a cadastrar")
	return cmd
}

func (a *app) nfsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "nfs <numero>",
		Short: "Consulta NFS-e a partir do número informado",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, svc ports.NFSeService) (sisgenfe.Result, error) {
				return svc.SearchNfs(ctx, args[0], a.queryOptions()...)
			})
		},
	}

	cmd.AddCommand(
		a.nfsDataCmd("emitir", "Cadastra uma NFS-e", func(ctx context.Context, svc ports.NFSeService, data map[string]interface{}) (sisgenfe.Result, error) {
			return svc.NewNfs(ctx, data)
		}),
		a.nfsDataCmd("corrigir", "Corrige uma NFS-e", func(ctx context.Context, svc ports.NFSeService, data map[string]interface{}) (sisgenfe.Result, error) {
			return svc.EditNfs(ctx, data)
		}),
		a.nfsDataCmd("cancelar", "Cancela uma NFS-e", func(ctx context.Context, svc ports.NFSeService, data map[string]interface{}) (sisgenfe.Result, error) {
			return svc.CancelNfs(ctx, data)
		}),
	)
	return cmd
}

// nfsDataCmd cria um subcomando que envia um arquivo JSON sem alterações
func (a *app) nfsDataCmd(use, short string, call func(context.Context, ports.NFSeService, map[string]interface{}) (sisgenfe.Result, error)) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <arquivo.json>",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := readData(args[0])
			if err != nil {
				return err
			}
			return a.run(cmd, func(ctx context.Context, svc ports.NFSeService) (sisgenfe.Result, error) {
				return call(ctx, svc, data)
			})
		},
	}
}

func (a *app) cityCmd() *cobra.Command {
	var params map[string]string

	cmd := &cobra.Command{
		Use:   "municipio <uf>",
		Short: "Consulta municípios de uma UF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			extra := make(map[string]interface{}, len(params))
			for k, v := range params {
				extra[k] = v
			}
			return a.run(cmd, func(ctx context.Context, svc ports.NFSeService) (sisgenfe.Result, error) {
				return svc.SearchCity(ctx, args[0], extra, a.queryOptions()...)
			})
		},
	}
	cmd.Flags().StringToStringVar(&params, "where", nil, "filtros extras (ex: --where nome=Campinas)")
	return cmd
}

func (a *app) unitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "unidade <nome>",
		Short: "Consulta uma unidade de medida",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, func(ctx context.Context, svc ports.NFSeService) (sisgenfe.Result, error) {
				return svc.SearchUnitOfMeasurement(ctx, args[0], a.queryOptions()...)
			})
		},
	}
}

// readData lê um objeto JSON de um arquivo ("-" para stdin)
func readData(path string) (map[string]interface{}, error) {
	var raw []byte
	var err error
	if path == "-" {
		raw, err = io.ReadAll(os.Stdin)
	} else {
		raw, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("erro ao ler %s: %w", path, err)
	}

	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var data map[string]interface{}
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("erro ao decodificar %s: %w", path, err)
	}
	return data, nil
}
