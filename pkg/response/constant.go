package response

const (
	MessageSuccess = "Success"

	// NaiveISOFormat is an ISO-8601 date-time without zone designator.
	NaiveISOFormat      = "2006-01-02T15:04:05"
	// naiveISOMicroFormat is used when the time has a sub-second part.
	naiveISOMicroFormat = NaiveISOFormat + ".000000"
)
