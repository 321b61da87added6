package main

import (
	"errors"
	"log"
	"strconv"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
)

// Thin HTTP boundary over the calculators: query-string numbers in, JSON
// results out. Rate parameters arrive as whole-number percentages and are
// divided by 100 before reaching the core; absent parameters fall back to
// the configured defaults.

// WebServer serves the calculator API
type WebServer struct {
	config *Config
	addr   string
}

// NewWebServer creates a server bound to addr
func NewWebServer(config *Config, addr string) *WebServer {
	return &WebServer{config: config, addr: addr}
}

// ListenAndServe blocks serving the API
func (s *WebServer) ListenAndServe() error {
	log.Printf("calculator API listening on %s", s.addr)
	return fasthttp.ListenAndServe(s.addr, s.route)
}

type apiMetadata struct {
	CalculationID string `json:"calculation_id"`
	TaxYear       string `json:"tax_year"`
	DurationMs    int64  `json:"duration_ms"`
}

type apiEnvelope struct {
	Metadata apiMetadata `json:"metadata"`
	Result   any         `json:"result"`
}

type apiError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (s *WebServer) route(ctx *fasthttp.RequestCtx) {
	start := time.Now()

	var result any
	var err error

	switch string(ctx.Path()) {
	case "/api/savings":
		result, err = s.handleSavings(ctx.QueryArgs())
	case "/api/loan":
		result, err = s.handleLoan(ctx.QueryArgs())
	case "/api/tax":
		result, err = s.handleTax(ctx.QueryArgs())
	case "/api/super":
		result, err = s.handleSuper(ctx.QueryArgs())
	case "/api/retirement":
		result, err = s.handleRetirement(ctx.QueryArgs())
	case "/api/age-pension":
		result, err = s.handleAgePension(ctx.QueryArgs())
	case "/api/mortgage-vs-rent":
		result, err = s.handleMortgageVsRent(ctx.QueryArgs())
	case "/api/net-worth":
		result, err = s.handleNetWorth(ctx.QueryArgs())
	default:
		writeJSON(ctx, fasthttp.StatusNotFound, apiError{
			Status:  fasthttp.StatusNotFound,
			Message: "unknown endpoint: " + string(ctx.Path()),
		})
		return
	}

	if err != nil {
		status := fasthttp.StatusInternalServerError
		var invalid *InvalidParameterError
		if errors.As(err, &invalid) {
			status = fasthttp.StatusBadRequest
		}
		writeJSON(ctx, status, apiError{Status: status, Message: err.Error()})
		return
	}

	writeJSON(ctx, fasthttp.StatusOK, apiEnvelope{
		Metadata: apiMetadata{
			CalculationID: uuid.New().String(),
			TaxYear:       s.config.TaxYear.Year,
			DurationMs:    time.Since(start).Milliseconds(),
		},
		Result: result,
	})
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	ctx.SetStatusCode(status)
	ctx.SetContentType("application/json")
	data, err := json.Marshal(v)
	if err != nil {
		ctx.SetStatusCode(fasthttp.StatusInternalServerError)
		ctx.SetBodyString(`{"status":500,"message":"encoding failure"}`)
		return
	}
	ctx.SetBody(data)
}

// queryFloat reads a plain number, falling back when absent or malformed
func queryFloat(args *fasthttp.Args, key string, fallback float64) float64 {
	raw := string(args.Peek(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return value
}

// queryRate reads a whole-number percentage and converts it to a fraction
func queryRate(args *fasthttp.Args, key string, fallback float64) float64 {
	raw := string(args.Peek(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return value / 100
}

func queryInt(args *fasthttp.Args, key string, fallback int) int {
	raw := string(args.Peek(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func queryBool(args *fasthttp.Args, key string) bool {
	raw := string(args.Peek(key))
	return raw == "1" || raw == "true" || raw == "yes"
}

func (s *WebServer) handleSavings(args *fasthttp.Args) (any, error) {
	input := SavingsInput{
		InitialBalance:      queryFloat(args, "initial", 0),
		MonthlyContribution: queryFloat(args, "monthly", 0),
		AnnualReturnRate:    queryRate(args, "return", s.config.Defaults.GetAnnualReturnRate()),
		FeeRate:             queryRate(args, "fees", s.config.Defaults.GetFeeRate()),
		EscalationRate:      queryRate(args, "escalation", 0),
		Years:               queryInt(args, "years", 0),
		Compounding:         ParseCompounding(string(args.Peek("compounding"))),
	}

	if target := queryFloat(args, "target", 0); target > 0 {
		return RequiredMonthlySavings(target, input)
	}
	return ProjectSavings(input)
}

func (s *WebServer) handleLoan(args *fasthttp.Args) (any, error) {
	// No rate default here: the configured defaults are investment returns,
	// not loan rates. An absent rate means an interest-free capacity.
	if payment := queryFloat(args, "payment", 0); payment > 0 {
		return BorrowingCapacity(payment,
			queryRate(args, "rate", 0),
			queryInt(args, "years", 30), 12)
	}
	return AmortizeLoan(LoanInput{
		Principal:       queryFloat(args, "principal", 0),
		AnnualRate:      queryRate(args, "rate", 0),
		TermYears:       queryInt(args, "years", 0),
		PaymentsPerYear: queryInt(args, "payments_per_year", 12),
	})
}

func (s *WebServer) handleTax(args *fasthttp.Args) (any, error) {
	if target := queryFloat(args, "target_net", 0); target > 0 {
		return RequiredGrossSalary(target, s.config)
	}
	return CalculateIncomeTax(IncomeTaxInput{
		AnnualSalary:  queryFloat(args, "salary", 0),
		SuperIncluded: queryBool(args, "super_included"),
		SuperRate:     queryRate(args, "super_rate", 0),
	}, s.config)
}

func (s *WebServer) handleSuper(args *fasthttp.Args) (any, error) {
	input := SuperInput{
		Salary:           queryFloat(args, "salary", 0),
		Balance:          queryFloat(args, "balance", 0),
		EmployerRate:     queryRate(args, "employer_rate", 0),
		PersonalRate:     queryRate(args, "personal_rate", 0),
		WageGrowthRate:   queryRate(args, "wage_growth", s.config.Defaults.GetInflationRate()),
		AnnualReturnRate: queryRate(args, "return", s.config.Defaults.GetAnnualReturnRate()),
		FeeRate:          queryRate(args, "fees", s.config.Defaults.GetFeeRate()),
		Years:            queryInt(args, "years", 0),
		Compounding:      ParseCompounding(string(args.Peek("compounding"))),
	}

	if target := queryFloat(args, "target", 0); target > 0 {
		return RequiredContributionRate(target, input, s.config)
	}
	return ProjectSuper(input, s.config)
}

func (s *WebServer) handleRetirement(args *fasthttp.Args) (any, error) {
	if expenses := queryFloat(args, "monthly_expenses", 0); expenses > 0 {
		if goal := queryFloat(args, "savings_goal", 0); goal > 0 {
			rate, err := WithdrawalRate(goal, expenses)
			if err != nil {
				return nil, err
			}
			return map[string]float64{"withdrawal_rate": rate}, nil
		}
		goal, err := SavingsGoal(expenses, queryRate(args, "withdrawal_rate", 0.04))
		if err != nil {
			return nil, err
		}
		return map[string]float64{"savings_goal": goal}, nil
	}

	return ProjectDrawdown(DrawdownInput{
		Balance:           queryFloat(args, "balance", 0),
		MonthlyWithdrawal: queryFloat(args, "monthly", 0),
		AnnualReturnRate:  queryRate(args, "return", s.config.Defaults.GetAnnualReturnRate()),
		InflationRate:     queryRate(args, "inflation", s.config.Defaults.GetInflationRate()),
		EarningsTaxRate:   queryRate(args, "earnings_tax", 0),
		CurrentAge:        queryInt(args, "age", 0),
		Years:             queryInt(args, "years", 30),
		Compounding:       ParseCompounding(string(args.Peek("compounding"))),
	})
}

func (s *WebServer) handleAgePension(args *fasthttp.Args) (any, error) {
	household := HouseholdSingle
	if string(args.Peek("household")) == "couple" {
		household = HouseholdCouple
	}
	return CalculateAgePension(AgePensionInput{
		Age:               queryInt(args, "age", 0),
		Household:         household,
		Homeowner:         queryBool(args, "homeowner"),
		AssessableAssets:  queryFloat(args, "assets", 0),
		FortnightlyIncome: queryFloat(args, "income", 0),
	}, s.config)
}

func (s *WebServer) handleMortgageVsRent(args *fasthttp.Args) (any, error) {
	return CompareMortgageVsRent(MortgageVsRentInput{
		HomePrice:            queryFloat(args, "price", 0),
		Deposit:              queryFloat(args, "deposit", 0),
		MortgageRate:         queryRate(args, "rate", 0),
		TermYears:            queryInt(args, "term", 30),
		PropertyGrowthRate:   queryRate(args, "growth", s.config.Defaults.GetInflationRate()),
		MonthlyRent:          queryFloat(args, "rent", 0),
		RentInflationRate:    queryRate(args, "rent_inflation", s.config.Defaults.GetInflationRate()),
		InvestmentReturnRate: queryRate(args, "return", s.config.Defaults.GetAnnualReturnRate()),
		Years:                queryInt(args, "years", 0),
	})
}

func (s *WebServer) handleNetWorth(args *fasthttp.Args) (any, error) {
	// Asset/liability lists are too structured for query strings; accept a
	// JSON body parameter instead.
	var input NetWorthInput
	if body := args.Peek("scenario"); len(body) > 0 {
		if err := json.Unmarshal(body, &input); err != nil {
			return nil, invalidParam("scenario", "malformed JSON: %v", err)
		}
	}
	if input.Years == 0 {
		input.Years = queryInt(args, "years", 10)
	}
	return ProjectNetWorth(input)
}
