// Package cli implements the interactive menu driver over the bank
// service. It owns prompting and presentation only; every rule lives
// behind the service.
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/vmaciel/branchbank/internal/models"
	"github.com/vmaciel/branchbank/internal/service"
)

const menuText = `
-- || Operations || --

[0] Deposit
[1] Withdraw
[2] Statement
[3] Create Client
[4] Create Account

[5] List Clients
[6] List Accounts
[7] Exit

Choice: `

// Menu runs the interactive session over an injected reader and writer so
// tests can drive it.
type Menu struct {
	svc    *service.BankService
	in     *bufio.Scanner
	out    io.Writer
	logger *slog.Logger
}

// NewMenu creates a menu bound to the service and the given streams.
func NewMenu(svc *service.BankService, in io.Reader, out io.Writer, logger *slog.Logger) *Menu {
	return &Menu{
		svc:    svc,
		in:     bufio.NewScanner(in),
		out:    out,
		logger: logger,
	}
}

// Run loops until the user exits or input ends. Every operation failure is
// reported and the loop continues; nothing here is fatal.
func (m *Menu) Run() {
	for {
		fmt.Fprint(m.out, menuText)
		option, ok := m.readLine()
		if !ok {
			return
		}

		switch option {
		case "0":
			m.deposit()
		case "1":
			m.withdraw()
		case "2":
			m.statement()
		case "3":
			m.createClient()
		case "4":
			m.createAccount()
		case "5":
			m.listClients()
		case "6":
			m.listAccounts()
		case "7":
			fmt.Fprintln(m.out, "\nSession closed.")
			return
		default:
			fmt.Fprintln(m.out, "\n[!] Invalid option, choose again")
		}
	}
}

func (m *Menu) readLine() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) prompt(label string) (string, bool) {
	fmt.Fprint(m.out, label)
	return m.readLine()
}

func (m *Menu) promptAmount(label string) (decimal.Decimal, bool) {
	raw, ok := m.prompt(label)
	if !ok {
		return decimal.Decimal{}, false
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		fmt.Fprintln(m.out, "\n[!] Invalid amount")
		return decimal.Decimal{}, false
	}
	return amount, true
}

func (m *Menu) printError(err error) {
	var svcErr *service.ServiceError
	if errors.As(err, &svcErr) {
		fmt.Fprintf(m.out, "\n[!] %s\n", svcErr.Message)
		return
	}
	m.logger.Error("operation failed", "error", err)
	fmt.Fprintf(m.out, "\n[!] %v\n", err)
}

func (m *Menu) deposit() {
	taxID, ok := m.prompt("Client tax id: ")
	if !ok {
		return
	}
	amount, ok := m.promptAmount("Deposit amount: ")
	if !ok {
		return
	}
	if err := m.svc.Deposit(taxID, amount); err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintf(m.out, "\n[+] Deposit of %s accepted\n", amount.StringFixed(2))
}

func (m *Menu) withdraw() {
	taxID, ok := m.prompt("Client tax id: ")
	if !ok {
		return
	}
	amount, ok := m.promptAmount("Withdrawal amount: ")
	if !ok {
		return
	}
	if err := m.svc.Withdraw(taxID, amount); err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintf(m.out, "\n[+] Withdrawal of %s accepted\n", amount.StringFixed(2))
}

func (m *Menu) statement() {
	taxID, ok := m.prompt("Client tax id: ")
	if !ok {
		return
	}
	kind, ok := m.prompt("Filter by kind (deposit/withdrawal, empty for all): ")
	if !ok {
		return
	}

	stmt, err := m.svc.AccountStatement(taxID, kind)
	if err != nil {
		m.printError(err)
		return
	}

	fmt.Fprintln(m.out, "\n========== STATEMENT ==========")
	if len(stmt.Records) == 0 {
		fmt.Fprintln(m.out, "No movements recorded.")
	}
	for _, r := range stmt.Records {
		sign := "+"
		if r.Kind == models.KindWithdrawal {
			sign = "-"
		}
		fmt.Fprintf(m.out, "[%s]\n[%s] %s: %s\n",
			r.RecordedAt.Format("02/01/2006 15:04:05"), sign, r.Kind, r.Amount.StringFixed(2))
	}
	fmt.Fprintf(m.out, "\nCurrent balance: %s\n", stmt.Balance.StringFixed(2))
	fmt.Fprintln(m.out, "===============================")
}

func (m *Menu) createClient() {
	fmt.Fprintln(m.out, "\n--- New client registration ---")
	taxID, ok := m.prompt("Tax id (11 digits): ")
	if !ok {
		return
	}
	if m.svc.ClientExists(taxID) {
		fmt.Fprintln(m.out, "\n[!] A client with this tax id already exists")
		return
	}
	name, ok := m.prompt("Full name: ")
	if !ok {
		return
	}
	birthDate, ok := m.prompt("Birth date (DD/MM/YYYY): ")
	if !ok {
		return
	}
	address, ok := m.prompt("Address (street, number - district - city/state): ")
	if !ok {
		return
	}

	if _, err := m.svc.CreateClient(address, taxID, name, birthDate); err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintln(m.out, "\n[+] Client registered")
}

func (m *Menu) createAccount() {
	taxID, ok := m.prompt("Client tax id: ")
	if !ok {
		return
	}
	acct, err := m.svc.CreateAccount(taxID)
	if err != nil {
		m.printError(err)
		return
	}
	fmt.Fprintf(m.out, "\n[+] Account %d created at agency %s\n", acct.Number(), acct.Agency())
}

func (m *Menu) listClients() {
	clients := m.svc.ListClients()
	fmt.Fprintln(m.out, "\n=============== CLIENTS ===============")
	if len(clients) == 0 {
		fmt.Fprintln(m.out, "No clients registered")
	}
	for _, c := range clients {
		fmt.Fprintf(m.out, "Tax ID: %s\nName: %s\nBirth date: %s\nAddress: %s\n",
			c.TaxID(), c.Name(), c.BirthDate(), c.Address())
		fmt.Fprintln(m.out, strings.Repeat("-", 30))
	}
	fmt.Fprintln(m.out, "=======================================")
}

func (m *Menu) listAccounts() {
	it := m.svc.ListAccounts()
	summary, ok := it.Next()
	if !ok {
		fmt.Fprintln(m.out, "\n[!] No accounts available")
		return
	}
	for ok {
		fmt.Fprintln(m.out, "\n"+summary)
		summary, ok = it.Next()
	}
}
