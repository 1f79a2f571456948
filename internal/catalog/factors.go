package catalog

// defaultFactors is the built-in emission factor table, keyed by 2017 NAICS
// codes per the EPA supply chain GHG emission factor dataset. Order is
// significant: search ties keep catalog order.
var defaultFactors = []Entry{
	{Code: "111110", Name: "Soybean Farming"},
	{Code: "111120", Name: "Oilseed (except Soybean) Farming"},
	{Code: "111130", Name: "Dry Pea and Bean Farming"},
	{Code: "111140", Name: "Wheat Farming"},
	{Code: "111150", Name: "Corn Farming"},
	{Code: "111199", Name: "All Other Grain Farming"},
	{Code: "111219", Name: "Other Vegetable (except Potato) and Melon Farming"},
	{Code: "111331", Name: "Apple Orchards"},
	{Code: "111420", Name: "Nursery and Floriculture Production"},
	{Code: "112111", Name: "Beef Cattle Ranching and Farming"},
	{Code: "112120", Name: "Dairy Cattle and Milk Production"},
	{Code: "112310", Name: "Chicken Egg Production"},
	{Code: "113310", Name: "Logging"},
	{Code: "114111", Name: "Finfish Fishing"},
	{Code: "211120", Name: "Crude Petroleum Extraction"},
	{Code: "211130", Name: "Natural Gas Extraction"},
	{Code: "212114", Name: "Surface Coal Mining"},
	{Code: "221111", Name: "Hydroelectric Power Generation"},
	{Code: "221112", Name: "Fossil Fuel Electric Power Generation"},
	{Code: "221114", Name: "Solar Electric Power Generation"},
	{Code: "221115", Name: "Wind Electric Power Generation"},
	{Code: "221210", Name: "Natural Gas Distribution"},
	{Code: "221310", Name: "Water Supply and Irrigation Systems"},
	{Code: "236220", Name: "Commercial and Institutional Building Construction"},
	{Code: "311111", Name: "Dog and Cat Food Manufacturing"},
	{Code: "311221", Name: "Wet Corn Milling"},
	{Code: "311313", Name: "Beet Sugar Manufacturing"},
	{Code: "311411", Name: "Frozen Fruit, Juice, and Vegetable Manufacturing"},
	{Code: "311511", Name: "Fluid Milk Manufacturing"},
	{Code: "311611", Name: "Animal (except Poultry) Slaughtering"},
	{Code: "311812", Name: "Commercial Bakeries"},
	{Code: "311920", Name: "Coffee and Tea Manufacturing"},
	{Code: "312111", Name: "Soft Drink Manufacturing"},
	{Code: "312120", Name: "Breweries"},
	{Code: "313110", Name: "Fiber, Yarn, and Thread Mills"},
	{Code: "315220", Name: "Men's and Boys' Cut and Sew Apparel Manufacturing"},
	{Code: "322121", Name: "Paper (except Newsprint) Mills"},
	{Code: "322211", Name: "Corrugated and Solid Fiber Box Manufacturing"},
	{Code: "324110", Name: "Petroleum Refineries"},
	{Code: "325120", Name: "Industrial Gas Manufacturing"},
	{Code: "325311", Name: "Nitrogenous Fertilizer Manufacturing"},
	{Code: "325412", Name: "Pharmaceutical Preparation Manufacturing"},
	{Code: "326111", Name: "Plastics Bag and Pouch Manufacturing"},
	{Code: "327310", Name: "Cement Manufacturing"},
	{Code: "331110", Name: "Iron and Steel Mills and Ferroalloy Manufacturing"},
	{Code: "331313", Name: "Alumina Refining and Primary Aluminum Production"},
	{Code: "332312", Name: "Fabricated Structural Metal Manufacturing"},
	{Code: "333120", Name: "Construction Machinery Manufacturing"},
	{Code: "334111", Name: "Electronic Computer Manufacturing"},
	{Code: "334413", Name: "Semiconductor and Related Device Manufacturing"},
	{Code: "335312", Name: "Motor and Generator Manufacturing"},
	{Code: "336111", Name: "Automobile Manufacturing"},
	{Code: "336411", Name: "Aircraft Manufacturing"},
	{Code: "337122", Name: "Nonupholstered Wood Household Furniture Manufacturing"},
	{Code: "339112", Name: "Surgical and Medical Instrument Manufacturing"},
	{Code: "423430", Name: "Computer and Computer Peripheral Equipment and Software Merchant Wholesalers"},
	{Code: "424410", Name: "General Line Grocery Merchant Wholesalers"},
	{Code: "441110", Name: "New Car Dealers"},
	{Code: "445110", Name: "Supermarkets and Other Grocery (except Convenience) Stores"},
	{Code: "447110", Name: "Gasoline Stations with Convenience Stores"},
	{Code: "454110", Name: "Electronic Shopping and Mail-Order Houses"},
	{Code: "481111", Name: "Scheduled Passenger Air Transportation"},
	{Code: "482111", Name: "Line-Haul Railroads"},
	{Code: "483111", Name: "Deep Sea Freight Transportation"},
	{Code: "484121", Name: "General Freight Trucking, Long-Distance, Truckload"},
	{Code: "485510", Name: "Charter Bus Industry"},
	{Code: "488510", Name: "Freight Transportation Arrangement"},
	{Code: "491110", Name: "Postal Service"},
	{Code: "492110", Name: "Couriers and Express Delivery Services"},
	{Code: "493110", Name: "General Warehousing and Storage"},
	{Code: "511210", Name: "Software Publishers"},
	{Code: "517311", Name: "Wired Telecommunications Carriers"},
	{Code: "518210", Name: "Data Processing, Hosting, and Related Services"},
	{Code: "522110", Name: "Commercial Banking"},
	{Code: "524126", Name: "Direct Property and Casualty Insurance Carriers"},
	{Code: "531120", Name: "Lessors of Nonresidential Buildings (except Miniwarehouses)"},
	{Code: "541110", Name: "Offices of Lawyers"},
	{Code: "541211", Name: "Offices of Certified Public Accountants"},
	{Code: "541330", Name: "Engineering Services"},
	{Code: "541511", Name: "Custom Computer Programming Services"},
	{Code: "541613", Name: "Marketing Consulting Services"},
	{Code: "541810", Name: "Advertising Agencies"},
	{Code: "561320", Name: "Temporary Help Services"},
	{Code: "561612", Name: "Security Guards and Patrol Services"},
	{Code: "561720", Name: "Janitorial Services"},
	{Code: "561730", Name: "Landscaping Services"},
	{Code: "562111", Name: "Solid Waste Collection"},
	{Code: "562212", Name: "Solid Waste Landfill"},
	{Code: "611310", Name: "Colleges, Universities, and Professional Schools"},
	{Code: "621111", Name: "Offices of Physicians (except Mental Health Specialists)"},
	{Code: "622110", Name: "General Medical and Surgical Hospitals"},
	{Code: "721110", Name: "Hotels (except Casino Hotels) and Motels"},
	{Code: "722511", Name: "Full-Service Restaurants"},
	{Code: "722513", Name: "Limited-Service Restaurants"},
	{Code: "811111", Name: "General Automotive Repair"},
	{Code: "812320", Name: "Drycleaning and Laundry Services (except Coin-Operated)"},
}

// Default returns the built-in catalog. Callers must not mutate it.
func Default() []Entry {
	return defaultFactors
}
