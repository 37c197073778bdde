package walletservice

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"net/http"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gin-gonic/gin"
	"github.com/zkbridge/walletkit/healthcheck"
	"github.com/zkbridge/walletkit/log"
	"github.com/zkbridge/walletkit/opstore"
	"github.com/zkbridge/walletkit/types"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const (
	meterName = "github.com/zkbridge/walletkit/walletservice"

	layerParam   = "layer"
	tokenParam   = "token"
	blockParam   = "block"
	toParam      = "to"
	l1TokenParam = "l1_token"
	l2TokenParam = "l2_token"
	kindParam    = "kind"
	limitParam   = "limit"

	layerL1 = "l1"
	layerL2 = "l2"

	// DefaultLimit is the number of operations listed when no limit is given
	DefaultLimit = 20
	// MaxLimit is the maximum number of operations listed by a request
	MaxLimit = 200
)

var errNoJournal = errors.New("operation journal is not enabled")

// WalletService serves the read-only wallet endpoints
type WalletService struct {
	logger       *log.Logger
	meter        metric.Meter
	readTimeout  time.Duration
	writeTimeout time.Duration
	wallet       Walleter
	tokens       TokenLister
	operations   OperationLister
	health       *healthcheck.HealthCheckHandler

	router *gin.Engine
}

// New returns the service, tokens, operations and health may be nil
func New(
	logger *log.Logger,
	readTimeout, writeTimeout time.Duration,
	wallet Walleter,
	tokens TokenLister,
	operations OperationLister,
	health *healthcheck.HealthCheckHandler,
) *WalletService {
	if health == nil {
		health = healthcheck.NewHealthCheckHandler(logger)
	}
	logger.Infof("starting wallet service for %s", wallet.Address().Hex())
	s := &WalletService{
		logger:       logger,
		meter:        otel.Meter(meterName),
		readTimeout:  readTimeout,
		writeTimeout: writeTimeout,
		wallet:       wallet,
		tokens:       tokens,
		operations:   operations,
		health:       health,
		router:       gin.New(),
	}
	s.router.Use(gin.Recovery())
	s.registerRoutes()
	return s
}

func (s *WalletService) registerRoutes() {
	s.router.GET("/health", gin.WrapH(s.health))
	s.router.GET("/address", s.GetAddressHandler)
	s.router.GET("/balance", s.GetBalanceHandler)
	s.router.GET("/balances", s.GetAllBalancesHandler)
	s.router.GET("/deposit-fee", s.GetDepositFeeHandler)
	s.router.GET("/contracts", s.GetContractsHandler)
	s.router.GET("/token-mapping", s.GetTokenMappingHandler)
	s.router.GET("/tokens", s.GetTokensHandler)
	s.router.GET("/operations", s.GetOperationsHandler)
	s.router.GET("/operations/:hash", s.GetOperationHandler)
}

// Handler exposes the router, used by tests
func (s *WalletService) Handler() http.Handler {
	return s.router
}

// Start serves on address until ctx is done
func (s *WalletService) Start(ctx context.Context, address string) error {
	srv := &http.Server{
		Addr:              address,
		Handler:           s.router,
		ReadTimeout:       s.readTimeout,
		ReadHeaderTimeout: s.readTimeout,
		WriteTimeout:      s.writeTimeout,
	}

	errC := make(chan error, 1)
	go func() {
		s.logger.Infof("wallet service listening on %s", address)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errC <- err
		}
	}()

	select {
	case err := <-errC:
		return fmt.Errorf("wallet service: %w", err)
	case <-ctx.Done():
	}

	s.logger.Info("shutting down wallet service...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.readTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Errorf("server shutdown error: %v", err)
		return err
	}
	s.logger.Info("wallet service exited gracefully")
	return nil
}

func (s *WalletService) setupRequest(c *gin.Context, counterName string) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithTimeout(c, s.readTimeout)
	counter, err := s.meter.Int64Counter(counterName)
	if err != nil {
		s.logger.Warnf("failed to create %s counter: %s", counterName, err)
		return ctx, cancel
	}
	counter.Add(ctx, 1)
	return ctx, cancel
}

func (s *WalletService) GetAddressHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"address": s.wallet.Address()})
}

// GetBalanceHandler returns the balance of one token on one layer.
// Query: layer (l1|l2, default l2), token (symbol or address, default ETH), block.
func (s *WalletService) GetBalanceHandler(c *gin.Context) {
	layer := c.DefaultQuery(layerParam, layerL2)
	if layer != layerL1 && layer != layerL2 {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid %s %q", layerParam, layer)})
		return
	}
	block, err := types.NewBlockParam(c.Query(blockParam))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	token, err := s.lookupToken(c.Query(tokenParam))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	ctx, cancel := s.setupRequest(c, "get_balance")
	defer cancel()

	var balance *big.Int
	address := token.L1Address
	if layer == layerL1 {
		balance, err = s.wallet.GetL1Balance(ctx, address, block)
	} else {
		if !token.IsETH() {
			if address, err = s.l2Address(ctx, token); err != nil {
				s.respondError(c, err)
				return
			}
		}
		balance, err = s.wallet.GetBalance(ctx, address, block)
	}
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, BalanceResult{Layer: layer, Token: address, Block: block.String(), Balance: balance.String()})
}

func (s *WalletService) GetAllBalancesHandler(c *gin.Context) {
	ctx, cancel := s.setupRequest(c, "get_all_balances")
	defer cancel()

	balances, err := s.wallet.GetAllBalances(ctx)
	if err != nil {
		s.respondError(c, err)
		return
	}
	res := AllBalancesResult{Address: s.wallet.Address(), Balances: make(map[string]string, len(balances))}
	for token, balance := range balances {
		res.Balances[token.Hex()] = balance.String()
	}
	c.JSON(http.StatusOK, res)
}

// GetDepositFeeHandler returns the full fee of depositing token to the optional recipient
func (s *WalletService) GetDepositFeeHandler(c *gin.Context) {
	token, err := s.lookupToken(c.Query(tokenParam))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	tx := &types.DepositTransaction{Token: token.L1Address}
	if to := c.Query(toParam); to != "" {
		if !common.IsHexAddress(to) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid %s address %q", toParam, to)})
			return
		}
		addr := common.HexToAddress(to)
		tx.To = &addr
	}

	ctx, cancel := s.setupRequest(c, "get_deposit_fee")
	defer cancel()

	fee, err := s.wallet.GetFullRequiredDepositFee(ctx, tx)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, newFeeResult(fee))
}

func (s *WalletService) GetContractsHandler(c *gin.Context) {
	ctx, cancel := s.setupRequest(c, "get_contracts")
	defer cancel()

	var (
		res ContractsResult
		err error
	)
	if res.MainContract, err = s.wallet.MainContract(ctx); err != nil {
		s.respondError(c, err)
		return
	}
	if res.L1Bridges, err = s.wallet.L1BridgeContracts(ctx); err != nil {
		s.respondError(c, err)
		return
	}
	if res.L2Bridges, err = s.wallet.L2BridgeContracts(ctx); err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetTokenMappingHandler resolves the counterpart of exactly one of l1_token or l2_token
func (s *WalletService) GetTokenMappingHandler(c *gin.Context) {
	l1Token, l2Token := c.Query(l1TokenParam), c.Query(l2TokenParam)
	if (l1Token == "") == (l2Token == "") {
		c.JSON(http.StatusBadRequest,
			gin.H{"error": fmt.Sprintf("exactly one of %s or %s is required", l1TokenParam, l2TokenParam)})
		return
	}

	ctx, cancel := s.setupRequest(c, "get_token_mapping")
	defer cancel()

	var res TokenMappingResult
	if l1Token != "" {
		token, err := s.lookupToken(l1Token)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		res.L1Address = token.L1Address
		if res.L2Address, err = s.wallet.L2TokenAddress(ctx, token.L1Address); err != nil {
			s.respondError(c, err)
			return
		}
	} else {
		if !common.IsHexAddress(l2Token) {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid %s address %q", l2TokenParam, l2Token)})
			return
		}
		var err error
		res.L2Address = common.HexToAddress(l2Token)
		if res.L1Address, err = s.wallet.L1TokenAddress(ctx, res.L2Address); err != nil {
			s.respondError(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, res)
}

func (s *WalletService) GetTokensHandler(c *gin.Context) {
	if s.tokens == nil {
		c.JSON(http.StatusOK, []types.Token{types.CreateETH()})
		return
	}
	c.JSON(http.StatusOK, s.tokens.Tokens())
}

// GetOperationsHandler lists the journaled operations, newest first
func (s *WalletService) GetOperationsHandler(c *gin.Context) {
	if s.operations == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errNoJournal.Error()})
		return
	}
	limit := DefaultLimit
	if raw := c.Query(limitParam); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 || n > MaxLimit {
			c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s must be between 1 and %d", limitParam, MaxLimit)})
			return
		}
		limit = n
	}
	_, cancel := s.setupRequest(c, "get_operations")
	defer cancel()

	ops, err := s.operations.List(opstore.Kind(c.Query(kindParam)), limit)
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, OperationsResult{Operations: ops, Count: len(ops)})
}

func (s *WalletService) GetOperationHandler(c *gin.Context) {
	if s.operations == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": errNoJournal.Error()})
		return
	}
	raw := c.Param("hash")
	hashBytes, err := hexutil.Decode(raw)
	if err != nil || len(hashBytes) != common.HashLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("invalid transaction hash %q", raw)})
		return
	}
	_, cancel := s.setupRequest(c, "get_operation")
	defer cancel()

	op, err := s.operations.GetByHash(common.BytesToHash(hashBytes))
	if err != nil {
		s.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, op)
}

func (s *WalletService) lookupToken(raw string) (types.Token, error) {
	if raw == "" {
		return types.CreateETH(), nil
	}
	if s.tokens != nil {
		return s.tokens.Lookup(raw)
	}
	if !common.IsHexAddress(raw) {
		return types.Token{}, fmt.Errorf("invalid %s %q", tokenParam, raw)
	}
	return types.Token{L1Address: common.HexToAddress(raw)}, nil
}

func (s *WalletService) l2Address(ctx context.Context, token types.Token) (common.Address, error) {
	if token.L2Address != (common.Address{}) {
		return token.L2Address, nil
	}
	return s.wallet.L2TokenAddress(ctx, token.L1Address)
}

func (s *WalletService) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, types.ErrUnknownToken), errors.Is(err, opstore.ErrOperationNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, types.ErrInvalidTransaction):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": err.Error()})
	default:
		s.logger.Errorf("request %s failed: %v", c.FullPath(), err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
