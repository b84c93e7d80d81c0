package hot

// DISH revision 23 record layouts. Field positions are 1-indexed byte
// offsets; anything not listed is filler. This table is the single source
// of truth for every offset, do not scatter positions anywhere else.
var rev23Layouts = []RecordLayout{
	{
		// File header
		ID: "BFH01",
		Fields: []FieldDescriptor{
			{Name: "bspCode", Start: 6, Length: 3, Kind: KindText},
			{Name: "fileDate", Start: 9, Length: 6, Kind: KindText},
			{Name: "billingPeriod", Start: 15, Length: 6, Kind: KindText},
			{Name: "dishVersion", Start: 21, Length: 2, Kind: KindText},
			{Name: "fileTypeInd", Start: 23, Length: 1, Kind: KindText},
			{Name: "sequenceNumber", Start: 24, Length: 6, Kind: KindNumber},
		},
	},
	{
		// Billing analysis header
		ID: "BCH02",
		Fields: []FieldDescriptor{
			{Name: "airlineCode", Start: 6, Length: 3, Kind: KindText},
			{Name: "currencyCode", Start: 9, Length: 3, Kind: KindText},
			{Name: "billingType", Start: 12, Length: 2, Kind: KindText},
			{Name: "airlineName", Start: 14, Length: 30, Kind: KindText},
		},
	},
	{
		// Office (agent) header
		ID: "BOH03",
		Fields: []FieldDescriptor{
			{Name: "iataNumber", Start: 6, Length: 8, Kind: KindText},
			{Name: "agentName", Start: 14, Length: 52, Kind: KindText},
			{Name: "agentCity", Start: 66, Length: 25, Kind: KindText},
			{Name: "agentCountry", Start: 91, Length: 2, Kind: KindText},
		},
	},
	{
		// Transaction header: an informational grouping marker
		ID: "BKT06",
		Fields: []FieldDescriptor{
			{Name: "transactionCode", Start: 6, Length: 4, Kind: KindText},
			{Name: "transactionNumber", Start: 10, Length: 6, Kind: KindNumber},
		},
	},
	{
		// Document identification
		ID: "BKS24",
		Fields: []FieldDescriptor{
			{Name: "documentNumber", Start: 6, Length: 13, Kind: KindText},
			{Name: "transactionCode", Start: 19, Length: 4, Kind: KindText},
			{Name: "issueDate", Start: 23, Length: 6, Kind: KindText},
			{Name: "conjunctionTicket", Start: 29, Length: 13, Kind: KindText},
			{Name: "originalDocumentNumber", Start: 42, Length: 13, Kind: KindText},
			{Name: "originalIssueDate", Start: 55, Length: 6, Kind: KindText},
			{Name: "formCode", Start: 61, Length: 2, Kind: KindText},
			{Name: "domIntIndicator", Start: 63, Length: 1, Kind: KindText},
		},
	},
	{
		// Document amounts
		ID: "BKS30",
		Fields: []FieldDescriptor{
			{Name: "fareAmount", Start: 6, Length: 12, Kind: KindSigned},
			{Name: "taxAmount", Start: 18, Length: 12, Kind: KindSigned},
			{Name: "penaltyAmount", Start: 30, Length: 12, Kind: KindSigned},
			{Name: "totalAmount", Start: 42, Length: 12, Kind: KindSigned},
			{Name: "currencyCode", Start: 54, Length: 3, Kind: KindText},
			{Name: "equivFareAmount", Start: 57, Length: 12, Kind: KindSigned},
		},
	},
	{
		// Tax breakdown: up to nine country/code/amount triplets
		ID: "BKS31",
		Fields: []FieldDescriptor{
			{Name: "taxCountry1", Start: 6, Length: 2, Kind: KindText},
			{Name: "taxCode1", Start: 8, Length: 2, Kind: KindText},
			{Name: "taxAmount1", Start: 10, Length: 10, Kind: KindSigned},
			{Name: "taxCountry2", Start: 20, Length: 2, Kind: KindText},
			{Name: "taxCode2", Start: 22, Length: 2, Kind: KindText},
			{Name: "taxAmount2", Start: 24, Length: 10, Kind: KindSigned},
			{Name: "taxCountry3", Start: 34, Length: 2, Kind: KindText},
			{Name: "taxCode3", Start: 36, Length: 2, Kind: KindText},
			{Name: "taxAmount3", Start: 38, Length: 10, Kind: KindSigned},
			{Name: "taxCountry4", Start: 48, Length: 2, Kind: KindText},
			{Name: "taxCode4", Start: 50, Length: 2, Kind: KindText},
			{Name: "taxAmount4", Start: 52, Length: 10, Kind: KindSigned},
			{Name: "taxCountry5", Start: 62, Length: 2, Kind: KindText},
			{Name: "taxCode5", Start: 64, Length: 2, Kind: KindText},
			{Name: "taxAmount5", Start: 66, Length: 10, Kind: KindSigned},
			{Name: "taxCountry6", Start: 76, Length: 2, Kind: KindText},
			{Name: "taxCode6", Start: 78, Length: 2, Kind: KindText},
			{Name: "taxAmount6", Start: 80, Length: 10, Kind: KindSigned},
			{Name: "taxCountry7", Start: 90, Length: 2, Kind: KindText},
			{Name: "taxCode7", Start: 92, Length: 2, Kind: KindText},
			{Name: "taxAmount7", Start: 94, Length: 10, Kind: KindSigned},
			{Name: "taxCountry8", Start: 104, Length: 2, Kind: KindText},
			{Name: "taxCode8", Start: 106, Length: 2, Kind: KindText},
			{Name: "taxAmount8", Start: 108, Length: 10, Kind: KindSigned},
			{Name: "taxCountry9", Start: 118, Length: 2, Kind: KindText},
			{Name: "taxCode9", Start: 120, Length: 2, Kind: KindText},
			{Name: "taxAmount9", Start: 122, Length: 10, Kind: KindSigned},
		},
	},
	{
		// Commission
		ID: "BKS39",
		Fields: []FieldDescriptor{
			{Name: "commissionRate", Start: 6, Length: 5, Kind: KindSigned},
			{Name: "commissionAmount", Start: 11, Length: 12, Kind: KindSigned},
			{Name: "netRemittance", Start: 23, Length: 12, Kind: KindSigned},
		},
	},
	{
		// Itinerary origin/destination city pair
		ID: "BKI61",
		Fields: []FieldDescriptor{
			{Name: "originCity", Start: 6, Length: 3, Kind: KindText},
			{Name: "destinationCity", Start: 9, Length: 3, Kind: KindText},
		},
	},
	{
		// Itinerary flight segment
		ID: "BKI63",
		Fields: []FieldDescriptor{
			{Name: "origin", Start: 6, Length: 3, Kind: KindText},
			{Name: "destination", Start: 9, Length: 3, Kind: KindText},
			{Name: "carrier", Start: 12, Length: 2, Kind: KindText},
			{Name: "flightNumber", Start: 14, Length: 4, Kind: KindText},
			{Name: "bookingClass", Start: 18, Length: 1, Kind: KindText},
			{Name: "flightDate", Start: 19, Length: 6, Kind: KindText},
			{Name: "fareBasis", Start: 25, Length: 13, Kind: KindText},
			{Name: "stopoverIndicator", Start: 38, Length: 1, Kind: KindText},
			{Name: "coupon", Start: 39, Length: 1, Kind: KindText},
			{Name: "departureTime", Start: 40, Length: 4, Kind: KindText},
			{Name: "arrivalTime", Start: 44, Length: 4, Kind: KindText},
		},
	},
	{
		// Passenger
		ID: "BAR64",
		Fields: []FieldDescriptor{
			{Name: "passengerName", Start: 6, Length: 49, Kind: KindText},
			{Name: "passengerType", Start: 55, Length: 3, Kind: KindText},
		},
	},
	{
		// Form of payment (additional record variant)
		ID: "BAR66",
		Fields: []FieldDescriptor{
			{Name: "fopType", Start: 6, Length: 2, Kind: KindText},
			{Name: "cardType", Start: 8, Length: 2, Kind: KindText},
			{Name: "cardNumber", Start: 10, Length: 19, Kind: KindText},
			{Name: "approvalCode", Start: 29, Length: 6, Kind: KindText},
		},
	},
	{
		// Form of payment
		ID: "BKP84",
		Fields: []FieldDescriptor{
			{Name: "fopType", Start: 6, Length: 2, Kind: KindText},
			{Name: "cardType", Start: 8, Length: 2, Kind: KindText},
			{Name: "cardNumber", Start: 10, Length: 19, Kind: KindText},
			{Name: "approvalCode", Start: 29, Length: 6, Kind: KindText},
			{Name: "fopAmount", Start: 35, Length: 12, Kind: KindSigned},
		},
	},
	{
		// Office totals
		ID: "BOT94",
		Fields: []FieldDescriptor{
			{Name: "fare", Start: 6, Length: 15, Kind: KindSigned},
			{Name: "tax", Start: 21, Length: 15, Kind: KindSigned},
			{Name: "amount", Start: 36, Length: 15, Kind: KindSigned},
			{Name: "netRemit", Start: 51, Length: 15, Kind: KindSigned},
			{Name: "documentCount", Start: 66, Length: 6, Kind: KindNumber},
		},
	},
	{
		// Billing analysis totals: parsed but informational only
		ID: "BCT95",
		Fields: []FieldDescriptor{
			{Name: "fare", Start: 6, Length: 15, Kind: KindSigned},
			{Name: "tax", Start: 21, Length: 15, Kind: KindSigned},
			{Name: "amount", Start: 36, Length: 15, Kind: KindSigned},
		},
	},
	{
		// File totals
		ID: "BFT99",
		Fields: []FieldDescriptor{
			{Name: "fare", Start: 6, Length: 15, Kind: KindSigned},
			{Name: "tax", Start: 21, Length: 15, Kind: KindSigned},
			{Name: "amount", Start: 36, Length: 15, Kind: KindSigned},
			{Name: "netRemit", Start: 51, Length: 15, Kind: KindSigned},
			{Name: "documentCount", Start: 66, Length: 8, Kind: KindNumber},
		},
	},
}
