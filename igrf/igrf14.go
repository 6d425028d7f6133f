package igrf

// Degree-1 rows of igrf14coeffs.txt (IAGA Working Group V-MOD, December 2024
// release). Main-field epochs 1900.0 through 2025.0 in 5-year steps, followed
// by the predictive secular variation for 2025-2030 in nT/yr. Epochs 1945.0
// through 2020.0 are definitive (DGRF).
var igrf14Epochs = []Coefficients{
	{G10: -31543, G11: -2298, H11: 5922},          // 1900.0
	{G10: -31464, G11: -2298, H11: 5909},          // 1905.0
	{G10: -31354, G11: -2297, H11: 5898},          // 1910.0
	{G10: -31212, G11: -2306, H11: 5875},          // 1915.0
	{G10: -31060, G11: -2317, H11: 5845},          // 1920.0
	{G10: -30926, G11: -2318, H11: 5817},          // 1925.0
	{G10: -30805, G11: -2316, H11: 5808},          // 1930.0
	{G10: -30715, G11: -2306, H11: 5812},          // 1935.0
	{G10: -30654, G11: -2292, H11: 5821},          // 1940.0
	{G10: -30594, G11: -2285, H11: 5810},          // 1945.0
	{G10: -30554, G11: -2250, H11: 5815},          // 1950.0
	{G10: -30500, G11: -2215, H11: 5820},          // 1955.0
	{G10: -30421, G11: -2169, H11: 5791},          // 1960.0
	{G10: -30334, G11: -2119, H11: 5776},          // 1965.0
	{G10: -30220, G11: -2068, H11: 5737},          // 1970.0
	{G10: -30100, G11: -2013, H11: 5675},          // 1975.0
	{G10: -29992, G11: -1956, H11: 5604},          // 1980.0
	{G10: -29873, G11: -1905, H11: 5500},          // 1985.0
	{G10: -29775, G11: -1848, H11: 5406},          // 1990.0
	{G10: -29692, G11: -1784, H11: 5306},          // 1995.0
	{G10: -29619.4, G11: -1728.2, H11: 5186.1},    // 2000.0
	{G10: -29554.63, G11: -1669.05, H11: 5077.99}, // 2005.0
	{G10: -29496.57, G11: -1586.42, H11: 4944.26}, // 2010.0
	{G10: -29441.46, G11: -1501.77, H11: 4795.99}, // 2015.0
	{G10: -29403.41, G11: -1451.37, H11: 4653.35}, // 2020.0
	{G10: -29350.0, G11: -1410.3, H11: 4545.5},    // 2025.0
}

var igrf14SV = Coefficients{G10: 12.6, G11: 10.0, H11: -21.5} // 2025-2030
