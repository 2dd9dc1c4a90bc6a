package analysis

// Section is one entry of the fixed legal-reference table.
type Section struct {
	Number      string
	Title       string
	Description string
	RelatedCase string
	Keywords    []string
}

// Sections returns the static IPC lookup table. Table order matters: on an
// equal overlap score the earlier entry wins.
func Sections() []Section {
	return []Section{
		{
			Number:      "378",
			Title:       "Theft",
			Description: "Whoever, intending to take dishonestly any movable property out of the possession of any person without that person's consent, moves that property in order to such taking, is said to commit theft. Punishment under Section 379 extends to imprisonment of either description for a term which may extend to three years, or with fine, or with both.",
			RelatedCase: "Pyare Lal Bhargava v. State of Rajasthan (1963)",
			Keywords:    []string{"theft", "steal", "stolen", "stealing", "punishment", "property", "rob", "robbery"},
		},
		{
			Number:      "302",
			Title:       "Punishment for Murder",
			Description: "Whoever commits murder shall be punished with death, or imprisonment for life, and shall also be liable to fine.",
			RelatedCase: "Bachan Singh v. State of Punjab (1980)",
			Keywords:    []string{"murder", "kill", "killed", "killing", "homicide", "death"},
		},
		{
			Number:      "420",
			Title:       "Cheating and Dishonestly Inducing Delivery of Property",
			Description: "Whoever cheats and thereby dishonestly induces the person deceived to deliver any property shall be punished with imprisonment of either description for a term which may extend to seven years, and shall also be liable to fine.",
			RelatedCase: "Hridaya Ranjan Prasad Verma v. State of Bihar (2000)",
			Keywords:    []string{"cheating", "cheated", "fraud", "scam", "deceive", "deceived", "dishonest", "swindle"},
		},
		{
			Number:      "351",
			Title:       "Assault",
			Description: "Whoever makes any gesture, or any preparation intending or knowing it to be likely that such gesture or preparation will cause any person present to apprehend that he is about to use criminal force to that person, is said to commit an assault.",
			RelatedCase: "Rupabati v. Shyama (1958)",
			Keywords:    []string{"assault", "attack", "attacked", "hit", "beaten", "threat", "threatened", "violence"},
		},
		{
			Number:      "499",
			Title:       "Defamation",
			Description: "Whoever, by words either spoken or intended to be read, or by signs or by visible representations, makes or publishes any imputation concerning any person intending to harm the reputation of such person, is said to defame that person. Punishment under Section 500 is simple imprisonment up to two years, or fine, or both.",
			RelatedCase: "Subramanian Swamy v. Union of India (2016)",
			Keywords:    []string{"defamation", "defame", "defamed", "reputation", "slander", "libel", "insult"},
		},
		{
			Number:      "498A",
			Title:       "Husband or Relative of Husband Subjecting a Woman to Cruelty",
			Description: "Whoever, being the husband or the relative of the husband of a woman, subjects such woman to cruelty shall be punished with imprisonment for a term which may extend to three years and shall also be liable to fine.",
			RelatedCase: "Arnesh Kumar v. State of Bihar (2014)",
			Keywords:    []string{"dowry", "cruelty", "harassment", "husband", "wife", "marriage", "domestic"},
		},
		{
			Number:      "363",
			Title:       "Punishment for Kidnapping",
			Description: "Whoever kidnaps any person from India or from lawful guardianship shall be punished with imprisonment of either description for a term which may extend to seven years, and shall also be liable to fine.",
			RelatedCase: "S. Varadarajan v. State of Madras (1965)",
			Keywords:    []string{"kidnap", "kidnapped", "kidnapping", "abduct", "abducted", "abduction", "missing"},
		},
		{
			Number:      "376",
			Title:       "Punishment for Rape",
			Description: "Whoever commits rape shall be punished with rigorous imprisonment of either description for a term which shall not be less than ten years, but which may extend to imprisonment for life, and shall also be liable to fine.",
			RelatedCase: "Mukesh v. State (NCT of Delhi) (2017)",
			Keywords:    []string{"rape", "sexual", "molestation", "molested", "outrage", "modesty"},
		},
		{
			Number:      "406",
			Title:       "Punishment for Criminal Breach of Trust",
			Description: "Whoever commits criminal breach of trust shall be punished with imprisonment of either description for a term which may extend to three years, or with fine, or with both.",
			RelatedCase: "Rashmi Kumar v. Mahesh Kumar Bhada (1997)",
			Keywords:    []string{"trust", "breach", "entrusted", "misappropriation", "misappropriated", "embezzlement"},
		},
		{
			Number:      "323",
			Title:       "Punishment for Voluntarily Causing Hurt",
			Description: "Whoever voluntarily causes hurt shall be punished with imprisonment of either description for a term which may extend to one year, or with fine which may extend to one thousand rupees, or with both.",
			RelatedCase: "Jashanmal Jhamatmal v. Brahmanand Sarupananda (1944)",
			Keywords:    []string{"hurt", "injury", "injured", "wound", "wounded", "beating", "slapped"},
		},
		{
			Number:      "441",
			Title:       "Criminal Trespass",
			Description: "Whoever enters into or upon property in the possession of another with intent to commit an offence or to intimidate, insult or annoy any person in possession of such property, is said to commit criminal trespass.",
			RelatedCase: "Mathri v. State of Punjab (1964)",
			Keywords:    []string{"trespass", "trespassing", "land", "encroachment", "encroached", "intrusion"},
		},
		{
			Number:      "463",
			Title:       "Forgery",
			Description: "Whoever makes any false document or false electronic record or part of a document or electronic record, with intent to cause damage or injury, is said to commit forgery. Punishment under Section 465 extends to imprisonment for two years, or fine, or both.",
			RelatedCase: "Md. Ibrahim v. State of Bihar (2009)",
			Keywords:    []string{"forgery", "forged", "fake", "false", "document", "signature", "counterfeit"},
		},
	}
}
