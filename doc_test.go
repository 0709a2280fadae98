package penny_test

import (
	"errors"
	"fmt"

	"github.com/govalues/penny"
)

func TaxAmount(priceAfterTax penny.Money, taxRate penny.Decimal) (penny.Money, penny.Money, error) {
	// Price
	priceBeforeTax, err := priceAfterTax.Fraction(taxRate)
	if err != nil {
		return penny.Money{}, penny.Money{}, err
	}

	// Tax Amount
	taxAmount, err := priceAfterTax.Sub(priceBeforeTax)
	if err != nil {
		return penny.Money{}, penny.Money{}, err
	}

	return priceBeforeTax, taxAmount, nil
}

// In this example, the sales tax amount is calculated for a product with
// a given price after tax, using a specified tax rate.
func Example_taxCalculation() {
	priceAfterTax := penny.MustParse("10")
	vatRate := penny.MustParseDecimal("0.065")

	priceBeforeTax, vatAmount, err := TaxAmount(priceAfterTax, vatRate)
	if err != nil {
		panic(err)
	}

	fmt.Printf("Price (before tax) = %v\n", priceBeforeTax)
	fmt.Printf("VAT                = %v\n", vatAmount)
	fmt.Printf("Price (after tax)  = %v\n", priceAfterTax)
	// Output:
	// Price (before tax) = 9.39
	// VAT                = 0.61
	// Price (after tax)  = 10.00
}

// In this example, a restaurant bill is shared by three guests and the
// extra cent is paid by the first guest.
func Example_splitBill() {
	bill := penny.MustParse("100.00")
	shares, err := bill.Split(3)
	if err != nil {
		panic(err)
	}
	for i, s := range shares {
		fmt.Printf("Guest %d pays %v\n", i+1, s)
	}
	// Output:
	// Guest 1 pays 33.34
	// Guest 2 pays 33.33
	// Guest 3 pays 33.33
}

// In this example, a payment is applied to two invoices, and each invoice
// receives no more than its outstanding balance.
func Example_paymentApplication() {
	payment := penny.MustParse("30.75")
	balances := []penny.Money{
		penny.MustParse("26.00"),
		penny.MustParse("4.74"),
	}
	applied, err := payment.AllocateMaxAmounts(balances...)
	if err != nil {
		panic(err)
	}
	fmt.Println(applied)
	// Output:
	// [26.00 4.74]
}

func ExampleNew() {
	fmt.Println(penny.New(567, 2))
	fmt.Println(penny.New(5675, 3))
	fmt.Println(penny.New(5, 0))
	// Output:
	// 5.67 <nil>
	// 5.68 <nil>
	// 5.00 <nil>
}

func ExampleNewFromMinorUnits() {
	fmt.Println(penny.NewFromMinorUnits(1950))
	fmt.Println(penny.NewFromMinorUnits(-5))
	// Output:
	// 19.50
	// -0.05
}

func ExampleNewFromFloat64() {
	fmt.Println(penny.NewFromFloat64(1.125))
	fmt.Println(penny.NewFromFloat64(343.205))
	// Output:
	// 1.13 <nil>
	// 343.21 <nil>
}

func ExampleParse() {
	fmt.Println(penny.Parse("5.67"))
	fmt.Println(penny.Parse("-.5"))
	_, err := penny.Parse("$5.67")
	fmt.Println(errors.Is(err, penny.ErrParse))
	// Output:
	// 5.67 <nil>
	// -0.50 <nil>
	// true
}

func ExampleParseWith() {
	fmt.Println(penny.ParseWith(penny.AccountingParser{}, "($1,234.50)"))
	fmt.Println(penny.ParseWith(penny.AccountingParser{}, "$99"))
	// Output:
	// -1234.50 <nil>
	// 99.00 <nil>
}

func ExampleMoney_Mul() {
	m := penny.MustParse("3.30")
	fmt.Println(m.Mul(penny.Float(1.0 / 12)))
	fmt.Println(m.Mul(penny.MustNewRatio(1, 12)))
	fmt.Println(penny.MustParse("0.03").Mul(penny.Float(0.5)))
	// Output:
	// 0.28 <nil>
	// 0.28 <nil>
	// 0.02 <nil>
}

func ExampleMoney_Quo() {
	_, err := penny.MustParse("1.00").Quo(penny.Int(3))
	fmt.Println(errors.Is(err, penny.ErrUnsupportedOperation))
	// Output:
	// true
}

func ExampleMoney_Allocate() {
	m := penny.MustParse("0.05")
	fmt.Println(m.Allocate(penny.Float(0.3), penny.Float(0.7)))
	fmt.Println(m.Allocate(penny.Float(0.25), penny.Float(0.25)))
	// Output:
	// [0.02 0.03] <nil>
	// [0.02 0.01] <nil>
}

func ExampleMoney_AllocateMaxAmounts() {
	m := penny.MustParse("100.00")
	fmt.Println(m.AllocateMaxAmounts(penny.MustParse("5.00"), penny.MustParse("2.00")))
	// Output:
	// [5.00 2.00] <nil>
}

func ExampleMoney_Split() {
	m := penny.MustParse("-1.01")
	fmt.Println(m.Split(4))
	// Output:
	// [-0.26 -0.25 -0.25 -0.25] <nil>
}

func ExampleMoney_Fraction() {
	m := penny.MustParse("2.50")
	fmt.Println(m.Fraction(penny.Float(0.15)))
	// Output:
	// 2.17 <nil>
}

func ExampleMoney_Round() {
	m := penny.MustParse("54.50")
	fmt.Println(m.Round(0))
	fmt.Println(m.Neg().Round(0))
	// Output:
	// 55.00
	// -55.00
}

func ExampleMoney_Floor() {
	fmt.Println(penny.MustParse("18.99").Floor())
	fmt.Println(penny.MustParse("-18.99").Floor())
	// Output:
	// 18.00
	// -18.00
}

func ExampleMoney_MinorUnits() {
	fmt.Println(penny.MustParse("19.50").MinorUnits())
	// Output:
	// 1950 true
}

func ExampleMoney_Cmp() {
	m := penny.MustParse("1.23")
	fmt.Println(m.Cmp(penny.Float(1.225)))
	fmt.Println(m.Cmp(penny.Int(2)))
	// Output:
	// 0 <nil>
	// -1 <nil>
}

func ExampleMoney_Format() {
	m := penny.MustParse("5.67")
	fmt.Printf("%v\n", m)
	fmt.Printf("%+v\n", m)
	fmt.Printf("%q\n", m)
	fmt.Printf("%d\n", m)
	fmt.Printf("%.4f\n", m)
	fmt.Printf("%8s|\n", m)
	fmt.Printf("%#v\n", m)
	// Output:
	// 5.67
	// +5.67
	// "5.67"
	// 567
	// 5.6700
	//     5.67|
	// penny.MustParse("5.67")
}
