package selkocards

// Default configuration values.
const (
	DefaultTopic      = "selkouutiset"
	DefaultArchiveURL = "https://hiandrewquinn.github.io/selkouutiset-archive/"
	DefaultIssueURL   = "https://github.com/hiAndrewQuinn/selkouutiset-archive/issues/new"
)

// Config holds deck generation settings.
type Config struct {
	// Pair decides which language goes on the front of every card.
	Pair LanguagePair

	// Topic is the first tag of every row.
	Topic string

	// ArchiveURL is the base of canonical source links.
	ArchiveURL string

	// IssueURL is linked from the card footer.
	IssueURL string

	// OutputDir is where exported decks are written.
	OutputDir string

	// Decorate renders the styled card back (header, question, answer
	// and metadata footer). When false the back holds the translation only.
	Decorate bool
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Pair:       DefaultLanguagePair,
		Topic:      DefaultTopic,
		ArchiveURL: DefaultArchiveURL,
		IssueURL:   DefaultIssueURL,
		OutputDir:  ".",
		Decorate:   true,
	}
}

// Validate returns an error if the configuration is unusable.
func (c *Config) Validate() error {
	if err := c.Pair.Validate(); err != nil {
		return err
	}
	if c.Topic == "" {
		return Errorf(EINVALID, "topic tag required")
	}
	return nil
}
