package closure

import "sync"

type Account struct {
	lock    sync.Mutex
	balance int64
}

func NewAccount(initialBalance int64) *Account {
	return &Account{
		balance: initialBalance,
	}
}

func (a *Account) Deposit(amount int64) int64 {
	a.lock.Lock()
	defer a.lock.Unlock()

	a.balance += amount

	return a.balance
}

// Withdraw leaves the balance untouched when amount exceeds it.
func (a *Account) Withdraw(amount int64) (balance int64, err error) {
	a.lock.Lock()
	defer a.lock.Unlock()

	if amount > a.balance {
		err = ErrInsufficientFunds
		balance = a.balance

		return
	}

	a.balance -= amount
	balance = a.balance

	return
}

func (a *Account) Balance() int64 {
	a.lock.Lock()
	defer a.lock.Unlock()

	return a.balance
}
