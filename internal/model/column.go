package model

// ColumnType is the inferred semantic type of a CSV column.
type ColumnType string

const (
	ColumnEmpty         ColumnType = "empty"
	ColumnText          ColumnType = "text"
	ColumnNumber        ColumnType = "number"
	ColumnMoney         ColumnType = "money"
	ColumnDateFI        ColumnType = "date-fi"
	ColumnDateISO       ColumnType = "date-iso"
	ColumnDateUS        ColumnType = "date-us"
	ColumnIBAN          ColumnType = "iban"
	ColumnReference     ColumnType = "reference"
	ColumnAccountNumber ColumnType = "account-number"
)

// IsDate reports whether the type is one of the three date variants.
func (t ColumnType) IsDate() bool {
	return t == ColumnDateFI || t == ColumnDateISO || t == ColumnDateUS
}

// Label returns a human-readable name for the column type.
func (t ColumnType) Label() string {
	switch t {
	case ColumnEmpty:
		return "Tyhjä"
	case ColumnText:
		return "Teksti"
	case ColumnNumber:
		return "Kokonaisluku"
	case ColumnMoney:
		return "Rahamäärä"
	case ColumnDateFI:
		return "Päivämäärä (31.12.2024)"
	case ColumnDateISO:
		return "Päivämäärä (2024-12-31)"
	case ColumnDateUS:
		return "Päivämäärä (12/31/2024)"
	case ColumnIBAN:
		return "IBAN-tilinumero"
	case ColumnReference:
		return "Viitenumero"
	case ColumnAccountNumber:
		return "Tilinumero"
	default:
		return string(t)
	}
}

// Mapping assigns a CSV column to a bookkeeping field.
type Mapping string

const (
	MapNone           Mapping = "none"
	MapDate           Mapping = "date"
	MapDescription    Mapping = "description"
	MapDebit          Mapping = "debit"
	MapCredit         Mapping = "credit"
	MapAmount         Mapping = "amount"
	MapAccountNumber  Mapping = "account-number"
	MapAccountName    Mapping = "account-name"
	MapDocumentNumber Mapping = "document-number"
	MapIBAN           Mapping = "iban"
	MapReference      Mapping = "reference"
	MapPayeePayer     Mapping = "payee-payer"
	MapVATPercent     Mapping = "vat-percent"
)

// Mappings lists every mapping in display order, for UI layers that
// present the choices to the user.
func Mappings() []Mapping {
	return []Mapping{
		MapNone, MapDate, MapDescription, MapDebit, MapCredit, MapAmount,
		MapAccountNumber, MapAccountName, MapDocumentNumber, MapIBAN,
		MapReference, MapPayeePayer, MapVATPercent,
	}
}

// Label returns a human-readable name for the mapping.
func (m Mapping) Label() string {
	switch m {
	case MapNone:
		return "Älä tuo"
	case MapDate:
		return "Päivämäärä"
	case MapDescription:
		return "Selite"
	case MapDebit:
		return "Debet"
	case MapCredit:
		return "Kredit"
	case MapAmount:
		return "Summa"
	case MapAccountNumber:
		return "Tilinumero"
	case MapAccountName:
		return "Tilin nimi"
	case MapDocumentNumber:
		return "Tositenumero"
	case MapIBAN:
		return "IBAN"
	case MapReference:
		return "Viitenumero"
	case MapPayeePayer:
		return "Maksaja/Saaja"
	case MapVATPercent:
		return "ALV-%"
	default:
		return string(m)
	}
}
