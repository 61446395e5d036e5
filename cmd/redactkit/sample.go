package main

// sampleText exercises every built-in category.
const sampleText = "Contact John Smith at john.smith@email.com or call (555) 123-4567. \n" +
	"His SSN is 123-45-6789 and credit card number is 4532-1234-5678-9012.\n" +
	"Address: 123 Main Street, Anytown, NY 10001."
