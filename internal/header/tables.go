package header

const unknown = "Unknown"

// companies maps company and licensee codes to names.
var companies = [256]string{
	/* 00 */ "Invalid", "Nintendo", "Ajinomoto", "Imagineer-Zoom",
	/* 04 */ "Chris Gray Enterprises Inc.", "Zamuse", "Falcom", unknown,
	/* 08 */ "Capcom", "HOT-B", "Jaleco", "Coconuts",
	/* 0C */ "Rage Software", "Micronet", "Technos", "Mebio Software",
	/* 10 */ "SHOUEi System", "Starfish", "Gremlin Graphics", "Electronic Arts",
	/* 14 */ "NCS / Masaya", "COBRA Team", "Human/Field", "KOEI",
	/* 18 */ "Hudson Soft", "Game Village", "Yanoman", unknown,
	/* 1C */ "Tecmo", unknown, "Open System", "Virgin Games",
	/* 20 */ "KSS", "Sunsoft", "POW", "Micro World",
	/* 24 */ unknown, unknown, "Enix", "Loriciel/Electro Brain",
	/* 28 */ "Kemco", "Seta Co.,Ltd.", "Culture Brain", "Irem Japan",
	/* 2C */ "Pal Soft", "Visit Co.,Ltd.", "INTEC Inc.", "System Sacom Corp.",
	/* 30 */ "Viacom New Media", "Carrozzeria", "Dynamic", "Nintendo",
	/* 34 */ "Magifact", "Hect", unknown, unknown,
	/* 38 */ "Capcom Europe", "Accolade Europe", unknown, "Arcade Zone",
	/* 3C */ "Empire Software", "Loriciel", "Gremlin Graphics", unknown,
	/* 40 */ "Seika Corp.", "UBI Soft", unknown, unknown,
	/* 44 */ "LifeFitness Exertainment", unknown, "System 3", "Spectrum Holobyte",
	/* 48 */ unknown, "Irem", unknown, "Raya Systems/Sculptured Software",
	/* 4C */ "Renovation Products", "Malibu Games/Black Pearl", unknown, "U.S. Gold",
	/* 50 */ "Absolute Entertainment", "Acclaim", "Activision", "American Sammy",
	/* 54 */ "GameTek", "Hi Tech Expressions", "LJN Toys", unknown,
	/* 58 */ unknown, unknown, "Mindscape", "Romstar, Inc.",
	/* 5C */ unknown, "Tradewest", unknown, "American Softworks Corp.",
	/* 60 */ "Titus", "Virgin Interactive Entertainment", "Maxis", "Origin/FCI/Pony Canyon",
	/* 64 */ unknown, unknown, unknown, "Ocean",
	/* 68 */ unknown, "Electronic Arts", unknown, "Laser Beam",
	/* 6C */ unknown, unknown, "Elite", "Electro Brain",
	/* 70 */ "Infogrames", "Interplay", "LucasArts", "Parker Brothers",
	/* 74 */ "Konami", "STORM", unknown, unknown,
	/* 78 */ "THQ Software", "Accolade Inc.", "Triffix Entertainment", unknown,
	/* 7C */ "Microprose", unknown, unknown, "Kemco",
	/* 80 */ "Misawa", "Teichio", "Namco Ltd.", "Lozc",
	/* 84 */ "Koei", unknown, "Tokuma Shoten Intermedia", "Tsukuda Original",
	/* 88 */ "DATAM-Polystar", unknown, unknown, "Bullet-Proof Software",
	/* 8C */ "Vic Tokai", unknown, "Character Soft", "I''Max",
	/* 90 */ "Takara", "CHUN Soft", "Video System Co., Ltd.", "BEC",
	/* 94 */ unknown, "Varie", "Yonezawa / S'Pal Corp.", "Kaneco",
	/* 98 */ unknown, "Pack in Video", "Nichibutsu", "TECMO",
	/* 9C */ "Imagineer Co.", unknown, unknown, unknown,
	/* A0 */ "Telenet", "Hori", unknown, unknown,
	/* A4 */ "Konami", "K.Amusement Leasing Co.", unknown, "Takara",
	/* A8 */ unknown, "Technos Jap.", "JVC", unknown,
	/* AC */ "Toei Animation", "Toho", unknown, "Namco Ltd.",
	/* B0 */ "Media Rings Corp.", "ASCII Co. Activison", "Bandai", unknown,
	/* B4 */ "Enix America", unknown, "Halken", unknown,
	/* B8 */ unknown, unknown, "Culture Brain", "Sunsoft",
	/* BC */ "Toshiba EMI", "Sony Imagesoft", unknown, "Sammy",
	/* C0 */ "Taito", unknown, "Kemco", "Square",
	/* C4 */ "Tokuma Soft", "Data East", "Tonkin House", unknown,
	/* C8 */ "KOEI", unknown, "Konami USA", "NTVIC",
	/* CC */ unknown, "Meldac", "Pony Canyon", "Sotsu Agency/Sunrise",
	/* D0 */ "Disco/Taito", "Sofel", "Quest Corp.", "Sigma",
	/* D4 */ "Ask Kodansha Co., Ltd.", unknown, "Naxat", unknown,
	/* D8 */ "Capcom Co., Ltd.", "Banpresto", "Tomy", "Acclaim",
	/* DC */ unknown, "NCS", "Human Entertainment", "Altron",
	/* E0 */ "Jaleco", unknown, "Yutaka", unknown,
	/* E4 */ "T&ESoft", "EPOCH Co.,Ltd.", unknown, "Athena",
	/* E8 */ "Asmik", "Natsume", "King Records", "Atlus",
	/* EC */ "Sony Music Entertainment", unknown, "IGS", unknown,
	/* F0 */ unknown, "Motown Software", "Left Field Entertainment", "Beam Software",
	/* F4 */ "Tec Magik", unknown, unknown, unknown,
	/* F8 */ unknown, "Cybersoft", unknown, "Psygnosis",
	/* FC */ unknown, unknown, "Davidson", unknown,
}

// countries maps region codes to names.
var countries = [16]string{
	/* 00 */ "Japan (NTSC)", "USA & Canada (NTSC)", "Europe, Oceania & Asia (PAL)", "Sweden (PAL)",
	/* 04 */ "Finland (PAL)", "Denmark (PAL)", "France (PAL)", "Holland (PAL)",
	/* 08 */ "Spain (PAL)", "Germany, Austria & Switzerland (PAL)", "Italy (PAL)", "Hong Kong & China (PAL)",
	/* 0C */ "Indonesia (PAL)", "South Korea (NTSC)", unknown, unknown,
}
